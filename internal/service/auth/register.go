package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Register creates a user with a bcrypt password hash and returns a session.
// Returns ErrAlreadyExists if the username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Result, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	now := time.Now()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		Name:         input.Name,
		PhotoURL:     input.PhotoURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return result, nil
}
