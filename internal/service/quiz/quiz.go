package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Create generates questions for the input documents and stores the quiz.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Quiz, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	difficulty := domain.ParseDifficulty(in.Difficulty)
	types := in.types()
	questions, err := s.gen.GenerateQuiz(ctx, domain.QuizRequest{
		DocumentIDs: in.DocumentIDs,
		Count:       in.QuestionCount,
		Difficulty:  difficulty,
		Types:       types,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz.Create: %w", err)
	}

	quiz := &domain.Quiz{
		ID:               uuid.New(),
		OwnerID:          in.OwnerID,
		Title:            in.Title,
		Topic:            strings.TrimSpace(in.Topic),
		Description:      strings.TrimSpace(in.Description),
		DocumentIDs:      in.DocumentIDs,
		QuestionCount:    len(questions),
		Difficulty:       difficulty,
		QuestionTypes:    types,
		TimeLimitMinutes: in.TimeLimitMinutes,
		PassingScore:     in.PassingScore,
		IsActive:         true,
		Questions:        questions,
		CreatedAt:        s.now(),
	}
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("quiz.Create: %w", err)
	}

	s.log.InfoContext(ctx, "quiz created",
		slog.String("quiz_id", quiz.ID.String()),
		slog.Int("questions", quiz.QuestionCount),
	)
	return quiz, nil
}

// Get returns a stored quiz in playable form.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("quiz.Get: %w", err)
	}
	n := Normalize(*quiz)
	return &n, nil
}

// DefaultListLimit is used when List is called without a limit.
const DefaultListLimit = 20

// List returns the newest stored quizzes.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Quiz, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultListLimit
	}
	quizzes, err := s.quizzes.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("quiz.List: %w", err)
	}
	return quizzes, nil
}

// Submit scores an attempt and records it in the owner's recent results.
// A failure to record is logged and does not fail the submission.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (domain.QuizResult, error) {
	stored, err := s.quizzes.GetByID(ctx, in.QuizID)
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("quiz.Submit: %w", err)
	}
	if in.TimeTaken < 0 {
		in.TimeTaken = 0
	}

	quiz := Normalize(*stored)
	res := Score(quiz, in.Answers, in.TimeTaken)

	title := strings.TrimSpace(stored.Title)
	if title == "" {
		title = domain.UntitledQuiz
	}
	entry := domain.RecentQuiz{
		ID:            quiz.ID,
		Title:         title,
		Topic:         quiz.Topic,
		QuestionCount: len(quiz.Questions),
		Score:         res.Score,
		Correct:       res.Correct,
		Total:         res.Total,
		Passed:        res.Passed,
		TimeTaken:     res.TimeTaken,
		Timestamp:     s.now(),
	}
	if len(quiz.DocumentIDs) > 0 {
		entry.DocumentID = &quiz.DocumentIDs[0]
	}

	owner := OwnerKey(in.OwnerID)
	if err := s.recent.Push(ctx, owner, entry); err != nil {
		s.log.WarnContext(ctx, "record recent quiz",
			slog.String("owner", owner),
			slog.String("error", err.Error()),
		)
	}
	return res, nil
}

// Recent returns the owner's latest results, newest first. A store outage
// yields an empty list.
func (s *Service) Recent(ctx context.Context, ownerID *uuid.UUID) ([]domain.RecentQuiz, error) {
	owner := OwnerKey(ownerID)
	list, err := s.recent.List(ctx, owner)
	if err != nil {
		s.log.WarnContext(ctx, "list recent quizzes",
			slog.String("owner", owner),
			slog.String("error", err.Error()),
		)
		return []domain.RecentQuiz{}, nil
	}
	return list, nil
}
