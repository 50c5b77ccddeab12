// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mockres/mockres/internal/handler/dto"
	"github.com/mockres/mockres/internal/service"
)

// Handler wraps fallback handlers shared across the router.
type Handler struct {
	version string
}

// New creates a new Handler instance.
func New(version string) *Handler {
	return &Handler{version: version}
}

// Hello is the root info endpoint.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "reqres mock API",
		"version": h.version,
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already written; nothing left to salvage.
		_ = err
	}
}

// writeError writes the uniform {"detail": {"error": ...}} envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.NewError(message))
}

// entityID extracts the {id} path parameter as a positive integer.
// Malformed or non-positive ids are a structural error (422), not a
// not-found. Reports success via the bool; the error response is
// already written on failure.
func entityID(w http.ResponseWriter, r *http.Request, label string) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusUnprocessableEntity, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}

// listQuery parses the shared page/size pagination parameters.
// `per_page` is accepted as an alias for `size`. Out-of-bounds values are
// a structural error (422), written before the store is touched.
func listQuery(w http.ResponseWriter, r *http.Request) (page, size int, ok bool) {
	query := r.URL.Query()

	page = service.DefaultPage
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusUnprocessableEntity, "Invalid page")
			return 0, 0, false
		}
		page = parsed
	}

	size = service.DefaultPageSize
	raw := query.Get("size")
	if raw == "" {
		raw = query.Get("per_page")
	}
	if raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > service.MaxPageSize {
			writeError(w, http.StatusUnprocessableEntity, "Invalid size")
			return 0, 0, false
		}
		size = parsed
	}

	return page, size, true
}
