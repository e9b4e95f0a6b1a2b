package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// pgCodeErrors maps SQLSTATE codes onto domain sentinels.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation (username)
	"23503": domain.ErrNotFound,      // foreign_key_violation (document gone mid-processing)
	"23514": domain.ErrValidation,    // check_violation (status, file size)
	"22P02": domain.ErrValidation,    // invalid_text_representation
}

// MapError wraps err with the entity and id and translates driver errors
// into domain sentinels. Context errors are kept as-is so callers can tell
// a timeout from a missing row.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	target := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows):
		target = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
				target = mapped
			}
		}
	}

	if id == uuid.Nil {
		return fmt.Errorf("%s: %w", entity, target)
	}
	return fmt.Errorf("%s %s: %w", entity, id, target)
}
