package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
	"github.com/heartmarshall/studydocs-backend/internal/service/quiz"
	"github.com/heartmarshall/studydocs-backend/pkg/ctxutil"
)

type quizService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	List(ctx context.Context, limit int) ([]domain.Quiz, error)
	Submit(ctx context.Context, in quiz.SubmitInput) (domain.QuizResult, error)
	Recent(ctx context.Context, ownerID *uuid.UUID) ([]domain.RecentQuiz, error)
}

// QuizHandler serves /api/quizzes.
type QuizHandler struct {
	svc quizService
	now func() time.Time
	log *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, now: time.Now, log: logger.With("handler", "quiz")}
}

// List handles GET /api/quizzes?limit=.
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.svc.List(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	now := h.now()
	out := make([]quizResponse, len(quizzes))
	for i := range quizzes {
		out[i] = toQuiz(&quizzes[i], now)
	}
	writeJSON(w, http.StatusOK, out)
}

// Recent handles GET /api/quizzes/recent for the session user or anonymous.
func (h *QuizHandler) Recent(w http.ResponseWriter, r *http.Request) {
	recent, err := h.svc.Recent(r.Context(), ctxutil.UserIDPtr(r.Context()))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if recent == nil {
		recent = []domain.RecentQuiz{}
	}
	writeJSON(w, http.StatusOK, recent)
}

// Get handles GET /api/quizzes/{id}.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuiz(q, h.now()))
}

type submitRequest struct {
	Answers   map[string]json.RawMessage `json:"answers"`
	TimeTaken int                        `json:"timeTaken"`
}

// Submit handles POST /api/quizzes/{id}/submit.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Submit(r.Context(), quiz.SubmitInput{
		QuizID:    id,
		Answers:   answerStrings(req.Answers),
		TimeTaken: req.TimeTaken,
		OwnerID:   ctxutil.UserIDPtr(r.Context()),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuizResult(res))
}

// answerStrings flattens submitted answers. Clients send option indexes as
// numbers or strings and true/false as booleans or strings.
func answerStrings(raw map[string]json.RawMessage) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		if t := strings.TrimSpace(string(v)); t != "null" {
			out[k] = t
		}
	}
	return out
}
