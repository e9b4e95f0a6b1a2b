package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Answer responds to a study question using all indexed content.
func (s *Service) Answer(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.NewValidationError("question", "Question is required")
	}
	s.track(ctx)

	results, err := s.content.All(ctx)
	if err != nil {
		return "", fmt.Errorf("ai.Answer: %w", err)
	}
	if len(results) == 0 {
		return NoContentText, nil
	}
	return s.generate(ctx, OpAnswer, answerPrompt(question, buildContext(results)))
}

// SummarizeInput selects what to summarize.
type SummarizeInput struct {
	Topic string
	// DocumentID restricts the summary to one document when set.
	DocumentID *uuid.UUID
}

// Summary is a model summary with its bullet rendering.
type Summary struct {
	Topic   string
	Heading string
	Text    string
	Bullets []Bullet
}

// Summarize produces a summary of a topic over all content or one document.
func (s *Service) Summarize(ctx context.Context, in SummarizeInput) (Summary, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return Summary{}, domain.NewValidationError("topic", "Topic is required")
	}
	s.track(ctx)

	results, err := s.content.All(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("ai.Summarize: %w", err)
	}
	if in.DocumentID != nil {
		results = byDocument(results, *in.DocumentID)
	}

	sum := Summary{Topic: topic, Heading: Capitalize(topic)}
	if len(results) == 0 {
		sum.Text = NoContentText
	} else {
		sum.Text, err = s.generate(ctx, OpSummarize, summaryPrompt(topic, buildContext(results)))
		if err != nil {
			return Summary{}, err
		}
	}
	sum.Bullets = ToBullets(StripReferences(sum.Text))
	return sum, nil
}

// DefaultQuestionCount is used when a quiz request names no count.
const DefaultQuestionCount = 10

// GenerateQuiz generates questions from the content of the given documents,
// in the order the documents are listed.
func (s *Service) GenerateQuiz(ctx context.Context, in domain.QuizRequest) ([]domain.Question, error) {
	if len(in.DocumentIDs) == 0 {
		return nil, domain.NewValidationError("documentIds", "Document IDs are required")
	}
	if in.Count <= 0 {
		in.Count = DefaultQuestionCount
	}
	if !in.Difficulty.IsValid() {
		in.Difficulty = domain.DifficultyMedium
	}
	if len(in.Types) == 0 {
		in.Types = domain.DefaultQuestionTypes()
	}
	s.track(ctx)

	all, err := s.content.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("ai.GenerateQuiz: %w", err)
	}
	var selected []domain.SearchResult
	for _, id := range in.DocumentIDs {
		selected = append(selected, byDocument(all, id)...)
	}
	if len(selected) == 0 {
		return nil, domain.NewValidationError("documentIds", "No content found in the specified documents")
	}

	text, err := s.generate(ctx, OpQuiz, quizPrompt(in.Count, in.Difficulty, in.Types, buildQuizContext(selected)))
	if err != nil {
		return nil, err
	}
	return parseQuestions(text), nil
}

// FlashcardInput configures flashcard generation.
type FlashcardInput struct {
	DocumentID uuid.UUID
	Topic      string
	Count      int
}

// DefaultCardCount is used when a flashcard request names no count.
const DefaultCardCount = 10

// Flashcards generates cards from the blocks of one document that mention
// the topic, or from the whole document when none do.
func (s *Service) Flashcards(ctx context.Context, in FlashcardInput) ([]domain.Flashcard, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return nil, domain.NewValidationError("topic", "Topic is required")
	}
	if in.DocumentID == uuid.Nil {
		return nil, domain.NewValidationError("documentId", "Document ID is required")
	}
	if in.Count <= 0 {
		in.Count = DefaultCardCount
	}
	s.track(ctx)

	all, err := s.content.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("ai.Flashcards: %w", err)
	}
	doc := byDocument(all, in.DocumentID)
	selected := mentioning(doc, topic)
	if len(selected) == 0 {
		selected = doc
	}
	if len(selected) == 0 {
		return nil, domain.NewValidationError("documentId", "No content found for document: "+in.DocumentID.String())
	}

	text, err := s.generate(ctx, OpFlashcards, flashcardPrompt(in.Count, topic, buildContext(selected)))
	if err != nil {
		return nil, err
	}
	return parseFlashcards(text), nil
}

// DefaultConceptBlocks is used when a concepts request names no limit.
const DefaultConceptBlocks = 20

// KeyConcepts lists the main concepts of up to max blocks of one document.
func (s *Service) KeyConcepts(ctx context.Context, documentID uuid.UUID, max int) ([]string, error) {
	if documentID == uuid.Nil {
		return nil, domain.NewValidationError("documentId", "Document ID is required")
	}
	if max <= 0 {
		max = DefaultConceptBlocks
	}
	s.track(ctx)

	all, err := s.content.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("ai.KeyConcepts: %w", err)
	}
	selected := byDocument(all, documentID)
	if len(selected) == 0 {
		return []string{}, nil
	}
	if len(selected) > max {
		selected = selected[:max]
	}

	text, err := s.generate(ctx, OpConcepts, conceptsPrompt(buildContext(selected)))
	if err != nil {
		return nil, err
	}
	return parseConcepts(text), nil
}

// Test sends prompt to the model unchanged and returns its raw output.
func (s *Service) Test(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.NewValidationError("prompt", "Prompt is required")
	}
	s.track(ctx)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.record(OpTest, outcomeFailure)
		return "", fmt.Errorf("ai.Test: %w", err)
	}
	s.record(OpTest, outcomeSuccess)
	return text, nil
}

func byDocument(results []domain.SearchResult, id uuid.UUID) []domain.SearchResult {
	var out []domain.SearchResult
	for _, r := range results {
		if r.DocumentID == id {
			out = append(out, r)
		}
	}
	return out
}

func mentioning(results []domain.SearchResult, topic string) []domain.SearchResult {
	needle := strings.ToLower(topic)
	var out []domain.SearchResult
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Content), needle) {
			out = append(out, r)
		}
	}
	return out
}
