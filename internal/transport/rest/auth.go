package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydocs-backend/internal/config"
	"github.com/heartmarshall/studydocs-backend/internal/domain"
	"github.com/heartmarshall/studydocs-backend/internal/service/auth"
	"github.com/heartmarshall/studydocs-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.Result, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.Result, error)
	Me(ctx context.Context, userID uuid.UUID) (domain.PublicUser, error)
}

// AuthHandler serves /api/auth and owns the session cookie.
type AuthHandler struct {
	svc    authService
	cookie config.AuthConfig
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cfg config.AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cfg, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setSession(w, result.Token)
	writeJSON(w, http.StatusOK, authResponse{Token: result.Token, User: result.User})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setSession(w, result.Token)
	writeJSON(w, http.StatusOK, authResponse{Token: result.Token, User: result.User})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	user, err := h.svc.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Not logged in")
			return
		}
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "username already exists")
	default:
		respondError(w, r, h.log, err)
	}
}
