package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

type documentResponse struct {
	ID               uuid.UUID `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"originalFilename"`
	FileSize         int64     `json:"fileSize"`
	FileType         string    `json:"fileType"`
	Status           string    `json:"status"`
	ContentSummary   string    `json:"contentSummary,omitempty"`
	UploadDate       time.Time `json:"uploadDate"`
}

func toDocument(d domain.Document) documentResponse {
	return documentResponse{
		ID:               d.ID,
		Filename:         d.Filename,
		OriginalFilename: d.OriginalFilename,
		FileSize:         d.FileSize,
		FileType:         d.FileType,
		Status:           d.Status.String(),
		ContentSummary:   d.ContentSummary,
		UploadDate:       d.UploadDate,
	}
}

func toDocuments(docs []domain.Document) []documentResponse {
	out := make([]documentResponse, len(docs))
	for i, d := range docs {
		out[i] = toDocument(d)
	}
	return out
}

type contentResponse struct {
	ID           uuid.UUID `json:"id"`
	DocumentID   uuid.UUID `json:"documentId"`
	PageNumber   *int      `json:"pageNumber"`
	SlideNumber  *int      `json:"slideNumber"`
	Content      string    `json:"content"`
	Topic        string    `json:"topic"`
	SectionTitle string    `json:"sectionTitle"`
	ContentHash  string    `json:"contentHash"`
	WordCount    int       `json:"wordCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toContents(blocks []domain.DocumentContent) []contentResponse {
	out := make([]contentResponse, len(blocks))
	for i, c := range blocks {
		out[i] = contentResponse{
			ID:           c.ID,
			DocumentID:   c.DocumentID,
			PageNumber:   c.PageNumber,
			SlideNumber:  c.SlideNumber,
			Content:      c.Content,
			Topic:        c.Topic,
			SectionTitle: c.SectionTitle,
			ContentHash:  c.ContentHash,
			WordCount:    c.WordCount,
			CreatedAt:    c.CreatedAt,
		}
	}
	return out
}

type documentStatsResponse struct {
	TotalDocuments       int   `json:"totalDocuments"`
	ProcessingCount      int   `json:"processingCount"`
	CompletedCount       int   `json:"completedCount"`
	FailedCount          int   `json:"failedCount"`
	TotalFileSize        int64 `json:"totalFileSize"`
	RecentDocumentsCount int   `json:"recentDocumentsCount"`
}

func toDocumentStats(s domain.DocumentStats) documentStatsResponse {
	return documentStatsResponse(s)
}

type searchResultResponse struct {
	DocumentID   uuid.UUID `json:"documentId"`
	ContentID    uuid.UUID `json:"contentId"`
	Content      string    `json:"content"`
	Filename     string    `json:"filename"`
	Topic        string    `json:"topic"`
	SectionTitle string    `json:"sectionTitle"`
	PageNumber   *int      `json:"pageNumber"`
	SlideNumber  *int      `json:"slideNumber"`
	Score        float64   `json:"score"`
}

func toSearchResult(r domain.SearchResult) searchResultResponse {
	return searchResultResponse{
		DocumentID:   r.DocumentID,
		ContentID:    r.ContentID,
		Content:      r.Content,
		Filename:     r.Filename,
		Topic:        r.Topic,
		SectionTitle: r.SectionTitle,
		PageNumber:   r.PageNumber,
		SlideNumber:  r.SlideNumber,
		Score:        r.Score,
	}
}

func toSearchResults(rs []domain.SearchResult) []searchResultResponse {
	out := make([]searchResultResponse, len(rs))
	for i, r := range rs {
		out[i] = toSearchResult(r)
	}
	return out
}

type indexStatsResponse struct {
	TotalDocuments int    `json:"totalDocuments"`
	IndexSize      int    `json:"indexSize"`
	IndexDirectory string `json:"indexDirectory"`
}

type quizResponse struct {
	ID            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Topic         string            `json:"topic"`
	Description   string            `json:"description,omitempty"`
	Questions     []domain.Question `json:"questions"`
	Total         int               `json:"totalQuestions"`
	Difficulty    string            `json:"difficulty"`
	QuestionTypes []string          `json:"questionTypes"`
	TimeLimit     int               `json:"timeLimit"`
	PassingScore  int               `json:"passingScore"`
	DocumentIDs   []uuid.UUID       `json:"documentIds"`
	IsActive      bool              `json:"isActive"`
	CreatedAt     time.Time         `json:"createdAt"`
	Timestamp     int64             `json:"timestamp"`
}

func toQuiz(q *domain.Quiz, now time.Time) quizResponse {
	types := make([]string, len(q.QuestionTypes))
	for i, t := range q.QuestionTypes {
		types[i] = t.String()
	}
	questions := q.Questions
	if questions == nil {
		questions = []domain.Question{}
	}
	return quizResponse{
		ID:            q.ID,
		Title:         q.Title,
		Topic:         q.Topic,
		Description:   q.Description,
		Questions:     questions,
		Total:         len(questions),
		Difficulty:    q.Difficulty.String(),
		QuestionTypes: types,
		TimeLimit:     q.TimeLimitMinutes,
		PassingScore:  q.PassingScore,
		DocumentIDs:   q.DocumentIDs,
		IsActive:      q.IsActive,
		CreatedAt:     q.CreatedAt,
		Timestamp:     millis(now),
	}
}

type reviewResponse struct {
	Question      domain.Question `json:"question"`
	UserAnswer    string          `json:"userAnswer"`
	CorrectAnswer json.RawMessage `json:"correctAnswer"`
	IsCorrect     bool            `json:"isCorrect"`
}

type quizResultResponse struct {
	Score     int              `json:"score"`
	Correct   int              `json:"correct"`
	Total     int              `json:"total"`
	Passed    bool             `json:"passed"`
	Review    []reviewResponse `json:"review"`
	TimeTaken int              `json:"timeTaken"`
}

func toQuizResult(res domain.QuizResult) quizResultResponse {
	review := make([]reviewResponse, len(res.Review))
	for i, item := range res.Review {
		correct := item.CorrectAnswer
		if len(correct) == 0 {
			correct = json.RawMessage("null")
		}
		review[i] = reviewResponse{
			Question:      item.Question,
			UserAnswer:    item.UserAnswer,
			CorrectAnswer: correct,
			IsCorrect:     item.IsCorrect,
		}
	}
	return quizResultResponse{
		Score:     res.Score,
		Correct:   res.Correct,
		Total:     res.Total,
		Passed:    res.Passed,
		Review:    review,
		TimeTaken: res.TimeTaken,
	}
}

type documentTypesResponse struct {
	PDF   int `json:"PDF"`
	DOC   int `json:"DOC"`
	PPT   int `json:"PPT"`
	ZIP   int `json:"ZIP"`
	Other int `json:"OTHER"`
}

type overviewResponse struct {
	TotalDocuments int                   `json:"totalDocuments"`
	TotalQuizzes   int                   `json:"totalQuizzes"`
	TotalSearches  int64                 `json:"totalSearches"`
	AIInteractions int64                 `json:"aiInteractions"`
	TotalFileSize  int64                 `json:"totalFileSize"`
	ActivityData   []int                 `json:"activityData"`
	DocumentTypes  documentTypesResponse `json:"documentTypes"`
}

func toOverview(o domain.Overview) overviewResponse {
	return overviewResponse{
		TotalDocuments: o.TotalDocuments,
		TotalQuizzes:   o.TotalQuizzes,
		TotalSearches:  o.TotalSearches,
		AIInteractions: o.AIInteractions,
		TotalFileSize:  o.TotalFileSize,
		ActivityData:   o.ActivityData,
		DocumentTypes:  documentTypesResponse(o.DocumentTypes),
	}
}

type activityResponse struct {
	DocumentID uuid.UUID `json:"documentId"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	TimeAgo    string    `json:"timeAgo"`
	UploadDate time.Time `json:"uploadDate"`
}

func toActivity(items []domain.ActivityItem) []activityResponse {
	out := make([]activityResponse, len(items))
	for i, it := range items {
		out[i] = activityResponse{
			DocumentID: it.DocumentID,
			Title:      it.Title,
			Type:       it.Type,
			Status:     it.Status.String(),
			TimeAgo:    it.TimeAgo,
			UploadDate: it.UploadDate,
		}
	}
	return out
}
