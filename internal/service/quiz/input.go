package quiz

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// CreateInput is a request to generate and store a quiz.
type CreateInput struct {
	Title            string
	Topic            string
	Description      string
	DocumentIDs      []uuid.UUID
	QuestionCount    int
	Difficulty       string
	QuestionTypes    []string
	TimeLimitMinutes int
	PassingScore     int
	OwnerID          *uuid.UUID
}

// DefaultQuestionCount is used when no count is requested.
const DefaultQuestionCount = 10

// Validate checks the input and fills in defaults.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if len(i.DocumentIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "documentIds", Message: "Document IDs are required"})
	}
	if i.QuestionCount < 0 || i.QuestionCount > 50 {
		errs = append(errs, domain.FieldError{Field: "questionCount", Message: "must be between 1 and 50"})
	}
	if i.PassingScore < 0 || i.PassingScore > 100 {
		errs = append(errs, domain.FieldError{Field: "passingScore", Message: "must be between 0 and 100"})
	}
	if i.TimeLimitMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "timeLimit", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	i.Title = strings.TrimSpace(i.Title)
	if i.Title == "" {
		i.Title = domain.DefaultQuizTitle
	}
	if i.QuestionCount == 0 {
		i.QuestionCount = DefaultQuestionCount
	}
	if i.TimeLimitMinutes == 0 {
		i.TimeLimitMinutes = domain.DefaultTimeLimitMinutes
	}
	if i.PassingScore == 0 {
		i.PassingScore = domain.DefaultPassingScore
	}
	return nil
}

func (i CreateInput) types() []domain.QuestionType {
	if len(i.QuestionTypes) == 0 {
		return domain.DefaultQuestionTypes()
	}
	out := make([]domain.QuestionType, 0, len(i.QuestionTypes))
	for _, t := range i.QuestionTypes {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			out = append(out, domain.QuestionType(t))
		}
	}
	if len(out) == 0 {
		return domain.DefaultQuestionTypes()
	}
	return out
}

// SubmitInput is a quiz attempt. Answers are keyed by question index.
type SubmitInput struct {
	QuizID    uuid.UUID
	Answers   map[string]string
	TimeTaken int
	OwnerID   *uuid.UUID
}
