package handler

import (
	"fmt"
	"net/http"

	"github.com/mockres/mockres/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "mockres_users_created_total %d\n", snap.UsersCreated)
	writeMetric(w, "mockres_users_updated_total %d\n", snap.UsersUpdated)
	writeMetric(w, "mockres_users_deleted_total %d\n", snap.UsersDeleted)

	writeMetric(w, "mockres_resources_created_total %d\n", snap.ResourcesCreated)
	writeMetric(w, "mockres_resources_updated_total %d\n", snap.ResourcesUpdated)
	writeMetric(w, "mockres_resources_deleted_total %d\n", snap.ResourcesDeleted)

	writeMetric(w, "mockres_registers_total %d\n", snap.Registers)
	writeMetric(w, "mockres_logins_total %d\n", snap.Logins)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
