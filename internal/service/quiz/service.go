// Package quiz persists generated quizzes and scores submitted attempts.
package quiz

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

type quizRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	List(ctx context.Context, limit int) ([]domain.Quiz, error)
	Create(ctx context.Context, quiz *domain.Quiz) error
}

type questionGenerator interface {
	GenerateQuiz(ctx context.Context, req domain.QuizRequest) ([]domain.Question, error)
}

type recentStore interface {
	Push(ctx context.Context, owner string, entry domain.RecentQuiz) error
	List(ctx context.Context, owner string) ([]domain.RecentQuiz, error)
}

// AnonymousOwner keys recent results of unauthenticated users.
const AnonymousOwner = "anonymous"

// OwnerKey returns the recent-results key for a possibly anonymous user.
func OwnerKey(userID *uuid.UUID) string {
	if userID == nil || *userID == uuid.Nil {
		return AnonymousOwner
	}
	return userID.String()
}

// Service manages quizzes.
type Service struct {
	quizzes quizRepo
	gen     questionGenerator
	recent  recentStore
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a quiz Service.
func NewService(log *slog.Logger, quizzes quizRepo, gen questionGenerator, recent recentStore) *Service {
	return &Service{
		quizzes: quizzes,
		gen:     gen,
		recent:  recent,
		now:     time.Now,
		log:     log.With("service", "quiz"),
	}
}
