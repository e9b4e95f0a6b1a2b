package quiz

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// NormalizeType maps generator question types onto the playable kinds.
// Unknown types are returned unchanged.
func NormalizeType(t string) string {
	switch t {
	case "MCQ", domain.QuestionKindMultipleChoice:
		return domain.QuestionKindMultipleChoice
	case "TRUE_FALSE", domain.QuestionKindTrueFalse:
		return domain.QuestionKindTrueFalse
	default:
		return t
	}
}

// Options returns the answer options of q from whichever field the model filled.
func Options(q domain.Question) []string {
	if len(q.Options) > 0 {
		return q.Options
	}
	if len(q.Choices) > 0 {
		return q.Choices
	}
	var out []string
	for _, o := range []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.OptionE, q.A, q.B, q.C, q.D, q.E} {
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Normalize returns a playable copy of quiz: only multiple-choice and
// true/false questions, options unified, and defaults applied.
func Normalize(quiz domain.Quiz) domain.Quiz {
	questions := make([]domain.Question, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		q.Type = NormalizeType(q.Type)
		switch q.Type {
		case domain.QuestionKindMultipleChoice:
			if len(q.Options) == 0 {
				q.Options = Options(q)
			}
		case domain.QuestionKindTrueFalse:
		default:
			continue
		}
		questions = append(questions, q)
	}
	quiz.Questions = questions

	if quiz.TimeLimitMinutes <= 0 {
		quiz.TimeLimitMinutes = domain.DefaultTimeLimitMinutes
	}
	if quiz.PassingScore <= 0 {
		quiz.PassingScore = domain.DefaultPassingScore
	}
	if strings.TrimSpace(quiz.Title) == "" {
		quiz.Title = domain.DefaultQuizTitle
	}
	return quiz
}

// CheckAnswer reports whether answer is correct for q. Multiple-choice
// answers are option indexes; true/false answers are "true" or "false".
func CheckAnswer(q domain.Question, answer string) bool {
	var correct any
	if len(q.CorrectAnswer) > 0 {
		if err := json.Unmarshal(q.CorrectAnswer, &correct); err != nil {
			return false
		}
	}

	switch NormalizeType(q.Type) {
	case domain.QuestionKindMultipleChoice:
		picked, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return false
		}
		switch c := correct.(type) {
		case float64:
			return float64(picked) == c
		case string:
			want := strings.ToLower(strings.TrimSpace(c))
			for i, o := range Options(q) {
				if strings.ToLower(strings.TrimSpace(o)) == want {
					return picked == i
				}
			}
		}
		return false

	case domain.QuestionKindTrueFalse:
		var want string
		switch c := correct.(type) {
		case bool:
			want = strconv.FormatBool(c)
		case string:
			want = strings.ToLower(c)
		case float64:
			want = strconv.FormatFloat(c, 'f', -1, 64)
		default:
			return false
		}
		return strings.ToLower(answer) == want
	}
	return false
}

// Score grades answers against the questions of an already normalized quiz.
func Score(quiz domain.Quiz, answers map[string]string, timeTaken int) domain.QuizResult {
	res := domain.QuizResult{
		Total:     len(quiz.Questions),
		Review:    make([]domain.ReviewItem, 0, len(quiz.Questions)),
		TimeTaken: timeTaken,
	}
	for i, q := range quiz.Questions {
		answer := answers[strconv.Itoa(i)]
		ok := CheckAnswer(q, answer)
		if ok {
			res.Correct++
		}
		res.Review = append(res.Review, domain.ReviewItem{
			Question:      q,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     ok,
		})
	}
	if res.Total > 0 {
		res.Score = int(math.Round(float64(res.Correct) / float64(res.Total) * 100))
	}
	res.Passed = res.Score >= quiz.PassingScore
	return res
}
