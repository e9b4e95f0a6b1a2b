package domain

import "strings"

// DocumentStatus is the processing state of an uploaded document.
type DocumentStatus string

const (
	DocumentStatusProcessing DocumentStatus = "PROCESSING"
	DocumentStatusCompleted  DocumentStatus = "COMPLETED"
	DocumentStatusFailed     DocumentStatus = "FAILED"
)

func (s DocumentStatus) String() string { return string(s) }

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusProcessing, DocumentStatusCompleted, DocumentStatusFailed:
		return true
	}
	return false
}

// ParseDocumentStatus parses a status case-insensitively.
func ParseDocumentStatus(s string) (DocumentStatus, bool) {
	st := DocumentStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// Difficulty is the requested difficulty of a generated quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty parses a difficulty case-insensitively, defaulting to MEDIUM.
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if !d.IsValid() {
		return DifficultyMedium
	}
	return d
}

// QuestionType is the kind of question requested from the generator.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "MCQ"
	QuestionTypeTrueFalse QuestionType = "TRUE_FALSE"
	QuestionTypeFillBlank QuestionType = "FILL_BLANK"
)

func (q QuestionType) String() string { return string(q) }

// DefaultQuestionTypes is used when a quiz request names no types.
func DefaultQuestionTypes() []QuestionType {
	return []QuestionType{QuestionTypeMCQ, QuestionTypeTrueFalse, QuestionTypeFillBlank}
}

// Normalized question types as stored on generated questions.
const (
	QuestionKindMultipleChoice = "multiple_choice"
	QuestionKindTrueFalse      = "true_false"
)
