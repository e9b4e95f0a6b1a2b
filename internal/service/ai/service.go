// Package ai answers questions, summarizes topics and generates study
// material from indexed document content through a text generator.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type contentSource interface {
	All(ctx context.Context) ([]domain.SearchResult, error)
}

type usageCounter interface {
	IncrementAI(ctx context.Context) error
}

type recorder interface {
	AICall(operation, outcome string)
}

// User-facing texts returned in place of a model answer.
const (
	FallbackText = "I'm experiencing technical difficulties with the AI service. " +
		"Please try again later, or check the search results directly to find the information you need."
	NoContentText = "I couldn't find any information in the uploaded documents. " +
		"Please make sure documents have been uploaded and processed."
)

// Operation names reported to metrics.
const (
	OpAnswer     = "answer"
	OpSummarize  = "summarize"
	OpQuiz       = "quiz"
	OpFlashcards = "flashcards"
	OpConcepts   = "concepts"
	OpTest       = "test"
)

// Call outcomes reported to metrics.
const (
	outcomeSuccess  = "success"
	outcomeFailure  = "failure"
	outcomeFallback = "fallback"
)

// Service implements the study assistant.
type Service struct {
	gen     generator
	content contentSource
	usage   usageCounter
	metrics recorder
	log     *slog.Logger
}

// NewService creates an ai Service.
func NewService(log *slog.Logger, gen generator, content contentSource, usage usageCounter, metrics recorder) *Service {
	return &Service{
		gen:     gen,
		content: content,
		usage:   usage,
		metrics: metrics,
		log:     log.With("service", "ai"),
	}
}

// track counts an assistant interaction. Counter failures are logged only.
func (s *Service) track(ctx context.Context) {
	if s.usage == nil {
		return
	}
	if err := s.usage.IncrementAI(ctx); err != nil {
		s.log.WarnContext(ctx, "increment ai counter", slog.String("error", err.Error()))
	}
}

func (s *Service) record(op, outcome string) {
	if s.metrics != nil {
		s.metrics.AICall(op, outcome)
	}
}

// generate calls the model. Once the generator has given up, the fallback
// text is returned in place of an answer; only cancellation is an error.
func (s *Service) generate(ctx context.Context, op, prompt string) (string, error) {
	text, err := s.gen.Generate(ctx, prompt)
	if err == nil {
		s.record(op, outcomeSuccess)
		return text, nil
	}
	if errors.Is(err, context.Canceled) {
		s.record(op, outcomeFailure)
		return "", fmt.Errorf("ai.%s: %w", op, err)
	}

	s.log.ErrorContext(ctx, "generation failed, using fallback",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
	s.record(op, outcomeFallback)
	return FallbackText, nil
}
