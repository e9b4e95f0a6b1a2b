// Package auth registers users and issues session tokens.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/config"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenIssuer signs session tokens.
type tokenIssuer interface {
	GenerateToken(userID uuid.UUID) (string, error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenIssuer
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		cfg:    cfg,
	}
}

func (s *Service) issue(user *domain.User) (*Result, error) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	return &Result{Token: token, User: user.Public()}, nil
}
