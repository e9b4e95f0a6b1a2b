package rest

import (
	"context"
	"net/http"
	"time"
)

// probeTimeout bounds each dependency ping.
const probeTimeout = 3 * time.Second

// Check is one dependency probed by the health endpoints. A failing
// critical check marks the service down; others only degrade it.
type Check struct {
	Name     string
	Ping     func(ctx context.Context) error
	Critical bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every critical dependency answers.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	for _, c := range h.checks {
		if !c.Critical {
			continue
		}
		if _, err := ping(r.Context(), c); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "down",
				Timestamp: time.Now(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports every dependency with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus, len(h.checks))
	overallStatus := "ok"

	for _, c := range h.checks {
		latency, err := ping(r.Context(), c)
		if err != nil {
			components[c.Name] = CompStatus{Status: "down"}
			switch {
			case c.Critical:
				overallStatus = "down"
			case overallStatus == "ok":
				overallStatus = "degraded"
			}
			continue
		}
		components[c.Name] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func ping(ctx context.Context, c Check) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	err := c.Ping(ctx)
	return time.Since(start), err
}
