// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectColumns = `id, username, password_hash, name, photo_url, created_at, updated_at`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+selectColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+selectColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

const insertSQL = `
INSERT INTO users (id, username, password_hash, name, photo_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + selectColumns

// Create inserts a new user and returns the persisted row.
// A taken username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx, insertSQL,
		u.ID, u.Username, u.PasswordHash, u.Name, u.PhotoURL, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
