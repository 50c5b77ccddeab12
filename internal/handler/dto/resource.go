package dto

import (
	"strconv"
	"time"

	"github.com/mockres/mockres/internal/model"
)

// CreateResourceRequest carries the full resource creation payload.
type CreateResourceRequest struct {
	Name         string `json:"name"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

// CreateResourceResponse echoes the request plus the store-assigned id
// (as a string) and a response-construction timestamp.
type CreateResourceResponse struct {
	Name         string    `json:"name"`
	Year         int       `json:"year"`
	Color        string    `json:"color"`
	PantoneValue string    `json:"pantone_value"`
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UpdateResourceRequest carries optional fields; absent fields leave
// stored values untouched.
type UpdateResourceRequest struct {
	Name         *string `json:"name,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Color        *string `json:"color,omitempty"`
	PantoneValue *string `json:"pantone_value,omitempty"`
}

// Patch converts the request into a store-level partial update.
func (r UpdateResourceRequest) Patch() model.ResourcePatch {
	return model.ResourcePatch{
		Name:         r.Name,
		Year:         r.Year,
		Color:        r.Color,
		PantoneValue: r.PantoneValue,
	}
}

// UpdateResourceResponse echoes only the supplied fields plus the update
// timestamp.
type UpdateResourceResponse struct {
	Name         *string   `json:"name,omitempty"`
	Year         *int      `json:"year,omitempty"`
	Color        *string   `json:"color,omitempty"`
	PantoneValue *string   `json:"pantone_value,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SingleResourceResponse wraps one resource with the static support block.
type SingleResourceResponse struct {
	Data    model.Resource `json:"data"`
	Support Support        `json:"support"`
}

// ToCreateResourceResponse builds the creation envelope.
func ToCreateResourceResponse(req CreateResourceRequest, res *model.Resource) CreateResourceResponse {
	return CreateResourceResponse{
		Name:         req.Name,
		Year:         req.Year,
		Color:        req.Color,
		PantoneValue: req.PantoneValue,
		ID:           strconv.FormatInt(res.ID, 10),
		CreatedAt:    time.Now().UTC(),
	}
}

// ToUpdateResourceResponse builds the update envelope, echoing the request.
func ToUpdateResourceResponse(req UpdateResourceRequest) UpdateResourceResponse {
	return UpdateResourceResponse{
		Name:         req.Name,
		Year:         req.Year,
		Color:        req.Color,
		PantoneValue: req.PantoneValue,
		UpdatedAt:    time.Now().UTC(),
	}
}
