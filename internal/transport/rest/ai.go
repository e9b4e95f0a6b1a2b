package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
	"github.com/heartmarshall/studydocs-backend/internal/service/ai"
	"github.com/heartmarshall/studydocs-backend/internal/service/quiz"
	"github.com/heartmarshall/studydocs-backend/pkg/ctxutil"
)

type aiService interface {
	Answer(ctx context.Context, question string) (string, error)
	Summarize(ctx context.Context, in ai.SummarizeInput) (ai.Summary, error)
	Flashcards(ctx context.Context, in ai.FlashcardInput) ([]domain.Flashcard, error)
	KeyConcepts(ctx context.Context, documentID uuid.UUID, max int) ([]string, error)
	Test(ctx context.Context, prompt string) (string, error)
}

type quizCreator interface {
	Create(ctx context.Context, in quiz.CreateInput) (*domain.Quiz, error)
}

// AIHandler serves /api/ai.
type AIHandler struct {
	svc     aiService
	quizzes quizCreator
	now     func() time.Time
	log     *slog.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(svc aiService, quizzes quizCreator, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		svc:     svc,
		quizzes: quizzes,
		now:     time.Now,
		log:     logger.With("handler", "ai"),
	}
}

// testPrompt is sent when /api/ai/test is called without a prompt.
const testPrompt = "Please respond with 'AI service is working correctly' if you can read this."

type qaRequest struct {
	Question   string `json:"question"`
	MaxResults int    `json:"maxResults"`
}

// Answer handles POST /api/ai/qa. maxResults is accepted; answers draw on
// all indexed content.
func (h *AIHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req qaRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	answer, err := h.svc.Answer(r.Context(), req.Question)
	if err != nil {
		respondAIError(w, r, h.log, "generate answer", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"question":  req.Question,
		"answer":    answer,
		"timestamp": millis(h.now()),
	})
}

type summarizeRequest struct {
	Topic      string     `json:"topic"`
	DocumentID *uuid.UUID `json:"documentId"`
	MaxResults int        `json:"maxResults"`
}

// Summarize handles POST /api/ai/summarize.
func (h *AIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sum, err := h.svc.Summarize(r.Context(), ai.SummarizeInput{Topic: req.Topic, DocumentID: req.DocumentID})
	if err != nil {
		respondAIError(w, r, h.log, "generate summary", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"topic":     sum.Topic,
		"heading":   sum.Heading,
		"summary":   sum.Text,
		"bullets":   sum.Bullets,
		"timestamp": millis(h.now()),
	})
}

type quizRequest struct {
	Title         string      `json:"title"`
	Topic         string      `json:"topic"`
	Description   string      `json:"description"`
	DocumentIDs   []uuid.UUID `json:"documentIds"`
	QuestionCount int         `json:"questionCount"`
	Difficulty    string      `json:"difficulty"`
	QuestionTypes []string    `json:"questionTypes"`
	TimeLimit     int         `json:"timeLimit"`
	PassingScore  int         `json:"passingScore"`
}

// Quiz handles POST /api/ai/quiz: questions are generated and the quiz is stored.
func (h *AIHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	q, err := h.quizzes.Create(r.Context(), quiz.CreateInput{
		Title:            req.Title,
		Topic:            req.Topic,
		Description:      req.Description,
		DocumentIDs:      req.DocumentIDs,
		QuestionCount:    req.QuestionCount,
		Difficulty:       req.Difficulty,
		QuestionTypes:    req.QuestionTypes,
		TimeLimitMinutes: req.TimeLimit,
		PassingScore:     req.PassingScore,
		OwnerID:          ctxutil.UserIDPtr(r.Context()),
	})
	if err != nil {
		respondAIError(w, r, h.log, "generate quiz", err)
		return
	}
	writeJSON(w, http.StatusOK, toQuiz(q, h.now()))
}

type flashcardRequest struct {
	Topic      string     `json:"topic"`
	DocumentID *uuid.UUID `json:"documentId"`
	CardCount  int        `json:"cardCount"`
}

// Flashcards handles POST /api/ai/flashcards.
func (h *AIHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	var req flashcardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var docID uuid.UUID
	if req.DocumentID != nil {
		docID = *req.DocumentID
	}
	cards, err := h.svc.Flashcards(r.Context(), ai.FlashcardInput{
		DocumentID: docID,
		Topic:      req.Topic,
		Count:      req.CardCount,
	})
	if err != nil {
		respondAIError(w, r, h.log, "generate flashcards", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"topic":      req.Topic,
		"flashcards": cards,
		"totalCards": len(cards),
		"timestamp":  millis(h.now()),
	})
}

type conceptsRequest struct {
	DocumentID *uuid.UUID `json:"documentId"`
	MaxResults int        `json:"maxResults"`
}

// Concepts handles POST /api/ai/concepts.
func (h *AIHandler) Concepts(w http.ResponseWriter, r *http.Request) {
	var req conceptsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.DocumentID == nil {
		writeError(w, http.StatusBadRequest, "Document ID is required")
		return
	}
	concepts, err := h.svc.KeyConcepts(r.Context(), *req.DocumentID, req.MaxResults)
	if err != nil {
		respondAIError(w, r, h.log, "extract concepts", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"concepts":      concepts,
		"totalConcepts": len(concepts),
		"timestamp":     millis(h.now()),
	})
}

type testRequest struct {
	Prompt string `json:"prompt"`
}

// Test handles POST /api/ai/test, a raw connectivity check against the model.
func (h *AIHandler) Test(w http.ResponseWriter, r *http.Request) {
	var req testRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = testPrompt
	}
	resp, err := h.svc.Test(r.Context(), prompt)
	if err != nil {
		h.log.WarnContext(r.Context(), "ai test failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":    "error",
			"message":   "AI service test failed",
			"timestamp": millis(h.now()),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"message":    "AI service is working correctly",
		"testPrompt": prompt,
		"response":   resp,
		"timestamp":  millis(h.now()),
	})
}

// respondAIError keeps the client error mapping and reports any other
// failure as "Failed to <op>: <cause>".
func respondAIError(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	if isClientError(err) {
		respondError(w, r, log, err)
		return
	}
	log.ErrorContext(r.Context(), "ai request failed",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	writeError(w, http.StatusInternalServerError, "Failed to "+op+": "+err.Error())
}

// Health handles GET /api/ai/health.
func (h *AIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "AI service is running")
}
