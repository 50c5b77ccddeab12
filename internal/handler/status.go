package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/mockres/mockres/internal/handler/dto"
)

// StatusStore is the probe surface the status endpoint needs. The
// connectivity check is "can we run a trivial count query" - any failure
// reads as disconnected, never as a handler error.
type StatusStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountResources(ctx context.Context) (int64, error)
}

// StatusHandler reports application health and store statistics.
type StatusHandler struct {
	store   StatusStore
	version string
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(store StatusStore, version string) *StatusHandler {
	return &StatusHandler{
		store:   store,
		version: version,
	}
}

// statusProbeTimeout bounds the count probes so a hung store cannot hold
// the status endpoint indefinitely.
const statusProbeTimeout = 5 * time.Second

// Status handles GET /status. Healthy means the store answers the probe
// AND at least one resource record is loaded. The endpoint itself always
// answers 200; the verdict is in the body.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), statusProbeTimeout)
	defer cancel()

	connected := true

	users, err := h.store.CountUsers(ctx)
	if err != nil {
		connected = false
	}
	resources, err := h.store.CountResources(ctx)
	if err != nil {
		connected = false
	}

	status := "healthy"
	if !connected || resources == 0 {
		status = "unhealthy"
	}

	writeJSON(w, http.StatusOK, dto.StatusResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Database: dto.DatabaseStatus{
			Connected: connected,
			Users:     users,
			Resources: resources,
		},
		Services: map[string]string{
			"users":     "operational",
			"resources": "operational",
			"auth":      "simulated",
		},
	})
}

// Healthz is a bare liveness probe.
// GET /healthz
func (h *StatusHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
