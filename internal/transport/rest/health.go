package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// prober defines the minimal interface for checker health probes.
type prober interface {
	Probe(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checker prober
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(checker prober, version string) *HealthHandler {
	return &HealthHandler{checker: checker, version: version}
}

// HealthResponse is the JSON response for /healthz and /health.
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

// Health is the full health check. It probes the email checker with latency
// measurement and includes the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.checker.Probe(ctx)
	latency := time.Since(start)

	if err != nil {
		components["checker"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["checker"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
