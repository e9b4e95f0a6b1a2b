// Package gemini generates text with the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/heartmarshall/studydocs-backend/internal/config"
)

var (
	// ErrRateLimited is returned for HTTP 429 responses.
	ErrRateLimited = errors.New("gemini: rate limited")
	// ErrUnavailable is returned for 5xx responses and transport failures.
	ErrUnavailable = errors.New("gemini: service unavailable")
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("gemini: empty response")
	// ErrNotConfigured is returned by a Generator built without an API key.
	ErrNotConfigured = errors.New("gemini: api key not configured")
)

type callFunc func(ctx context.Context, prompt string) (string, error)

// Generator sends single-turn prompts to a Gemini model.
type Generator struct {
	call       callFunc
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
	timeout    time.Duration
	log        *slog.Logger
}

// New creates a Generator from config. Without an API key every call
// fails with ErrNotConfigured, so the service falls back to canned replies.
func New(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*Generator, error) {
	g := &Generator{
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), max(cfg.Burst, 1)),
		maxRetries: max(cfg.MaxRetries, 1),
		backoff:    cfg.RetryBackoff,
		timeout:    cfg.Timeout,
		log:        logger.With("adapter", "gemini"),
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		g.log.Warn("gemini api key is empty, ai features will return fallbacks")
		g.call = func(context.Context, string) (string, error) { return "", ErrNotConfigured }
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Temperature),
		TopK:            genai.Ptr(cfg.TopK),
		TopP:            genai.Ptr(cfg.TopP),
		MaxOutputTokens: cfg.MaxOutputTokens,
	}
	model := cfg.Model

	g.call = func(ctx context.Context, prompt string) (string, error) {
		contents := []*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}}
		result, err := client.Models.GenerateContent(ctx, model, contents, genCfg)
		if err != nil {
			return "", mapError(err)
		}
		return result.Text(), nil
	}
	return g, nil
}

// Generate returns the model's text for prompt. Rate-limited and
// unavailable errors are retried with a linear backoff (base * attempt).
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("gemini: wait for rate limiter: %w", err)
		}

		text, err := g.once(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !Retriable(err) || attempt == g.maxRetries {
			break
		}

		delay := g.backoff * time.Duration(attempt)
		g.log.WarnContext(ctx, "gemini call failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	g.log.ErrorContext(ctx, "gemini call failed", slog.String("error", lastErr.Error()))
	return "", lastErr
}

func (g *Generator) once(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	text, err := g.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Retriable reports whether a failed call may succeed if repeated.
func Retriable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnavailable)
}

func mapError(err error) error {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case code >= 500:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("gemini: request rejected (status %d): %w", code, err)
	}
}
