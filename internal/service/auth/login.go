package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Login checks a username and password and returns a session.
// Unknown users and wrong passwords both yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}

// Me returns the public profile of the session user.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.PublicUser{}, domain.ErrUnauthorized
		}
		return domain.PublicUser{}, fmt.Errorf("auth.Me: %w", err)
	}
	return user.Public(), nil
}
