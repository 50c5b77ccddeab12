package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mockres/mockres/internal/handler/dto"
	"github.com/mockres/mockres/internal/model"
	"github.com/mockres/mockres/internal/service"
)

// ResourceHandler handles HTTP requests for color resource operations.
type ResourceHandler struct {
	svc    *service.ResourceService
	logger *slog.Logger
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(svc *service.ResourceService, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/resources.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size, ok := listQuery(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.svc.List(r.Context(), page, size))
}

// Get handles GET /api/resources/{id}.
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := entityID(w, r, "resource")
	if !ok {
		return
	}

	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, dto.SingleResourceResponse{
		Data:    *res,
		Support: dto.DefaultSupport(),
	})
}

// Create handles POST /api/resources.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.Create(r.Context(), &model.Resource{
		Name:         req.Name,
		Year:         req.Year,
		Color:        req.Color,
		PantoneValue: req.PantoneValue,
	})
	if err != nil {
		h.handleServiceError(w, err, 0)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCreateResourceResponse(req, res))
}

// Update handles PUT and PATCH /api/resources/{id}. Both verbs perform
// the same partial merge.
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := entityID(w, r, "resource")
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.svc.Update(r.Context(), id, req.Patch()); err != nil {
		h.handleServiceError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUpdateResourceResponse(req))
}

// Delete handles DELETE /api/resources/{id}.
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := entityID(w, r, "resource")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps service errors to HTTP responses.
func (h *ResourceHandler) handleServiceError(w http.ResponseWriter, err error, id int64) {
	switch {
	case errors.Is(err, service.ErrResourceNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Resource %d not found", id))
	case errors.Is(err, service.ErrNameRequired):
		writeError(w, http.StatusBadRequest, "Name is required")
	case errors.Is(err, service.ErrInvalidYear):
		writeError(w, http.StatusBadRequest, "Invalid year")
	case errors.Is(err, service.ErrResourceCreateFailed):
		writeError(w, http.StatusBadRequest, "Failed to create resource")
	case errors.Is(err, service.ErrResourceUpdateFailed):
		writeError(w, http.StatusBadRequest, "Failed to update resource")
	case errors.Is(err, service.ErrResourceDeleteFailed):
		writeError(w, http.StatusBadRequest, "Failed to delete resource")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
