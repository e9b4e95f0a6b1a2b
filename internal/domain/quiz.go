package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Quiz defaults applied when generation or storage leaves them unset.
const (
	DefaultQuizTitle        = "Generated Quiz"
	DefaultTimeLimitMinutes = 10
	DefaultPassingScore     = 70
	UntitledQuiz            = "Untitled Quiz"
)

// Question is a generated quiz question. Models return several shapes for the
// answer options and the correct answer, so all of them are kept as received.
type Question struct {
	Question      string          `json:"question"`
	Type          string          `json:"type"`
	CorrectAnswer json.RawMessage `json:"correctAnswer,omitempty"`
	Options       []string        `json:"options,omitempty"`
	Choices       []string        `json:"choices,omitempty"`
	OptionA       string          `json:"optionA,omitempty"`
	OptionB       string          `json:"optionB,omitempty"`
	OptionC       string          `json:"optionC,omitempty"`
	OptionD       string          `json:"optionD,omitempty"`
	OptionE       string          `json:"optionE,omitempty"`
	A             string          `json:"a,omitempty"`
	B             string          `json:"b,omitempty"`
	C             string          `json:"c,omitempty"`
	D             string          `json:"d,omitempty"`
	E             string          `json:"e,omitempty"`
	Explanation   string          `json:"explanation,omitempty"`
	Source        string          `json:"source,omitempty"`
}

// Quiz is a persisted set of generated questions.
type Quiz struct {
	ID               uuid.UUID
	OwnerID          *uuid.UUID
	Title            string
	Topic            string
	Description      string
	DocumentIDs      []uuid.UUID
	QuestionCount    int
	Difficulty       Difficulty
	QuestionTypes    []QuestionType
	TimeLimitMinutes int
	PassingScore     int
	IsActive         bool
	Questions        []Question
	CreatedAt        time.Time
}

// ReviewItem is the per-question outcome of a scored attempt.
type ReviewItem struct {
	Question      Question
	UserAnswer    string
	CorrectAnswer json.RawMessage
	IsCorrect     bool
}

// QuizResult is a scored quiz attempt.
type QuizResult struct {
	Score     int
	Correct   int
	Total     int
	Passed    bool
	Review    []ReviewItem
	TimeTaken int
}

// RecentQuiz is one entry of an owner's recent quiz outcomes.
type RecentQuiz struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Topic         string     `json:"topic"`
	DocumentID    *uuid.UUID `json:"documentId"`
	QuestionCount int        `json:"questionCount"`
	Score         int        `json:"score"`
	Correct       int        `json:"correct"`
	Total         int        `json:"total"`
	Passed        bool       `json:"passed"`
	TimeTaken     int        `json:"timeTaken"`
	Timestamp     time.Time  `json:"timestamp"`
}

// Flashcard is a generated front/back study card.
type Flashcard struct {
	Front  string `json:"front"`
	Back   string `json:"back"`
	Source string `json:"source"`
}

// QuizRequest describes the questions to generate for a quiz.
type QuizRequest struct {
	DocumentIDs []uuid.UUID
	Count       int
	Difficulty  Difficulty
	Types       []QuestionType
}
