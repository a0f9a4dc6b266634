package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/frahmantamala/rbac-console/internal/shell"
)

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthUnhealthy HealthStatus = "unhealthy"
)

type HealthResponse struct {
	Status     HealthStatus          `json:"status"`
	CheckedAt  time.Time             `json:"checked_at"`
	Components map[string]CheckEntry `json:"components"`
}

type CheckEntry struct {
	Status     HealthStatus   `json:"status"`
	Message    string         `json:"message,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	CheckedAt  time.Time      `json:"checked_at"`
	DurationMs int64          `json:"duration_ms"`
}

type HealthHandler struct {
	panels []shell.Panel
}

func NewHealthHandler(panels ...shell.Panel) *HealthHandler {
	return &HealthHandler{panels: panels}
}

// pingHandler → just says service is up
func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "OK"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// healthCheckHandler → reports every in-memory store with its size
func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     HealthHealthy,
		Components: make(map[string]CheckEntry, len(h.panels)),
	}

	for _, p := range h.panels {
		start := time.Now()
		entry := CheckEntry{
			Status: HealthHealthy,
			Details: map[string]any{
				"count":    p.Len(),
				"revision": p.Revision(),
			},
			CheckedAt: time.Now(),
		}
		entry.DurationMs = time.Since(start).Milliseconds()
		resp.Components[p.Kind()] = entry
	}
	if len(h.panels) == 0 {
		resp.Status = HealthUnhealthy
	}
	resp.CheckedAt = time.Now()

	statusCode := http.StatusOK
	if resp.Status == HealthUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
