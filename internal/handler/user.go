package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mockres/mockres/internal/handler/dto"
	"github.com/mockres/mockres/internal/service"
)

// maxListDelaySeconds caps the deliberate stall on the list endpoint. It
// exists purely to exercise client timeout handling in test suites.
const maxListDelaySeconds = 10

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/users.
// Supports page/size pagination and an optional blocking delay in
// seconds. The delay has no cancellation path; it holds the handler for
// its full duration.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size, ok := listQuery(w, r)
	if !ok {
		return
	}

	if raw := r.URL.Query().Get("delay"); raw != "" {
		// Bounds are checked on the integer itself; converting first
		// would overflow time.Duration for huge values and slip past
		// the comparison.
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds < 0 || seconds > maxListDelaySeconds {
			writeError(w, http.StatusUnprocessableEntity, "Invalid delay")
			return
		}
		if seconds > 0 {
			time.Sleep(time.Duration(seconds) * time.Second)
		}
	}

	writeJSON(w, http.StatusOK, h.svc.List(r.Context(), page, size))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := entityID(w, r, "user")
	if !ok {
		return
	}

	user, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, dto.SingleUserResponse{
		Data:    *user,
		Support: dto.DefaultSupport(),
	})
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.svc.Create(r.Context(), req.Name, req.Job)
	if err != nil {
		h.handleServiceError(w, err, 0)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCreateUserResponse(req, user))
}

// Update handles PUT and PATCH /api/users/{id}. Both verbs perform the
// same partial merge: absent fields never clobber stored values.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := entityID(w, r, "user")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.svc.Update(r.Context(), id, req.Name); err != nil {
		h.handleServiceError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUpdateUserResponse(req))
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := entityID(w, r, "user")
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
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, id int64) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("User %d not found", id))
	case errors.Is(err, service.ErrNameRequired):
		writeError(w, http.StatusBadRequest, "Name is required")
	case errors.Is(err, service.ErrJobRequired):
		writeError(w, http.StatusBadRequest, "Job is required")
	case errors.Is(err, service.ErrUserCreateFailed):
		writeError(w, http.StatusBadRequest, "Failed to create user")
	case errors.Is(err, service.ErrUserUpdateFailed):
		writeError(w, http.StatusBadRequest, "Failed to update user")
	case errors.Is(err, service.ErrUserDeleteFailed):
		writeError(w, http.StatusBadRequest, "Failed to delete user")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
