// Package quiz implements the Quiz repository using PostgreSQL.
// Questions are stored as a JSONB document on the quiz row.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Repo provides quiz persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectColumns = `id, owner_id, title, topic, description, document_ids, question_count, difficulty,
       question_types, time_limit_minutes, passing_score, is_active, questions, created_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a quiz by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+selectColumns+` FROM quizzes WHERE id = $1`, id)
	quiz, err := scanQuiz(row)
	if err != nil {
		return nil, postgres.MapError(err, "quiz", id)
	}
	return quiz, nil
}

// List returns the newest quizzes first, at most limit.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.Quiz, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+selectColumns+` FROM quizzes ORDER BY created_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Quiz, 0)
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		out = append(out, *quiz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	return out, nil
}

// Count returns the number of stored quizzes.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM quizzes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quizzes: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO quizzes (id, owner_id, title, topic, description, document_ids, question_count, difficulty,
                     question_types, time_limit_minutes, passing_score, is_active, questions, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// Create inserts a quiz with its questions.
func (r *Repo) Create(ctx context.Context, quiz *domain.Quiz) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("marshal quiz questions: %w", err)
	}

	types := make([]string, len(quiz.QuestionTypes))
	for i, t := range quiz.QuestionTypes {
		types[i] = string(t)
	}

	_, err = q.Exec(ctx, insertSQL,
		quiz.ID, quiz.OwnerID, quiz.Title, quiz.Topic, quiz.Description, quiz.DocumentIDs,
		quiz.QuestionCount, string(quiz.Difficulty), types, quiz.TimeLimitMinutes,
		quiz.PassingScore, quiz.IsActive, questions, quiz.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "quiz", quiz.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanQuiz(row pgx.Row) (*domain.Quiz, error) {
	var (
		quiz       domain.Quiz
		difficulty string
		types      []string
		questions  []byte
	)
	if err := row.Scan(
		&quiz.ID, &quiz.OwnerID, &quiz.Title, &quiz.Topic, &quiz.Description, &quiz.DocumentIDs,
		&quiz.QuestionCount, &difficulty, &types, &quiz.TimeLimitMinutes, &quiz.PassingScore,
		&quiz.IsActive, &questions, &quiz.CreatedAt,
	); err != nil {
		return nil, err
	}

	quiz.Difficulty = domain.Difficulty(difficulty)
	quiz.QuestionTypes = make([]domain.QuestionType, len(types))
	for i, t := range types {
		quiz.QuestionTypes[i] = domain.QuestionType(t)
	}
	if err := json.Unmarshal(questions, &quiz.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal quiz questions: %w", err)
	}
	return &quiz, nil
}
