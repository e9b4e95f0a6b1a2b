package ai

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

var errNoJSON = errors.New("no JSON object found in response")

// extractJSON returns the text between the first '{' and the last '}'.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", errNoJSON
	}
	raw := s[start : end+1]
	if !gjson.Valid(raw) {
		return "", errNoJSON
	}
	return raw, nil
}

// FallbackQuestion stands in for a quiz the model response could not be parsed into.
func FallbackQuestion() domain.Question {
	return domain.Question{
		Question:      "Failed to parse quiz questions",
		Type:          domain.QuestionTypeMCQ.String(),
		CorrectAnswer: json.RawMessage(`"Error"`),
		Explanation:   "Please try again",
		Source:        "Error",
		Options:       []string{"A", "B", "C", "D"},
	}
}

// FallbackFlashcard stands in for flashcards the model response could not be parsed into.
func FallbackFlashcard() domain.Flashcard {
	return domain.Flashcard{Front: "Failed to parse flashcards", Back: "Error", Source: "Error"}
}

// parseQuestions reads {"questions":[...]} from a model response. Answers and
// options are kept in whatever shape the model produced.
func parseQuestions(response string) []domain.Question {
	raw, err := extractJSON(response)
	if err != nil {
		return []domain.Question{FallbackQuestion()}
	}
	list := gjson.Get(raw, "questions")
	if !list.IsArray() {
		return []domain.Question{FallbackQuestion()}
	}

	var out []domain.Question
	list.ForEach(func(_, q gjson.Result) bool {
		text := strings.TrimSpace(q.Get("question").String())
		if text == "" {
			return true
		}
		question := domain.Question{
			Question:    text,
			Type:        q.Get("type").String(),
			Options:     stringArray(q.Get("options")),
			Choices:     stringArray(q.Get("choices")),
			OptionA:     q.Get("optionA").String(),
			OptionB:     q.Get("optionB").String(),
			OptionC:     q.Get("optionC").String(),
			OptionD:     q.Get("optionD").String(),
			OptionE:     q.Get("optionE").String(),
			A:           q.Get("a").String(),
			B:           q.Get("b").String(),
			C:           q.Get("c").String(),
			D:           q.Get("d").String(),
			E:           q.Get("e").String(),
			Explanation: q.Get("explanation").String(),
			Source:      q.Get("source").String(),
		}
		if ans := q.Get("correctAnswer"); ans.Exists() {
			question.CorrectAnswer = json.RawMessage(ans.Raw)
		}
		out = append(out, question)
		return true
	})
	if len(out) == 0 {
		return []domain.Question{FallbackQuestion()}
	}
	return out
}

// parseFlashcards reads {"flashcards":[...]} from a model response.
func parseFlashcards(response string) []domain.Flashcard {
	raw, err := extractJSON(response)
	if err != nil {
		return []domain.Flashcard{FallbackFlashcard()}
	}
	list := gjson.Get(raw, "flashcards")
	if !list.IsArray() {
		return []domain.Flashcard{FallbackFlashcard()}
	}

	var out []domain.Flashcard
	for _, c := range list.Array() {
		front := strings.TrimSpace(c.Get("front").String())
		if front == "" {
			continue
		}
		out = append(out, domain.Flashcard{
			Front:  front,
			Back:   c.Get("back").String(),
			Source: c.Get("source").String(),
		})
	}
	if len(out) == 0 {
		return []domain.Flashcard{FallbackFlashcard()}
	}
	return out
}

func stringArray(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	arr := r.Array()
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		out = append(out, v.String())
	}
	return out
}

// parseConcepts keeps one concept per non-empty line. Markdown headings and
// dash lines are dropped; numbered and starred prefixes are stripped.
func parseConcepts(response string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		line = strings.TrimSpace(conceptPrefix.ReplaceAllString(line, ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
