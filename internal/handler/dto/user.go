package dto

import (
	"strconv"
	"time"

	"github.com/mockres/mockres/internal/model"
)

// CreateUserRequest is the public creation contract: a display name and a
// job title. The stored identity is synthesized from the name.
type CreateUserRequest struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// CreateUserResponse echoes the request plus the store-assigned id (as a
// string, matching the public API) and a response-construction timestamp.
type CreateUserResponse struct {
	Name      string    `json:"name"`
	Job       string    `json:"job"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateUserRequest carries an optional name and job; absent fields leave
// stored values untouched.
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty"`
	Job  *string `json:"job,omitempty"`
}

// UpdateUserResponse echoes only the supplied fields plus the update
// timestamp.
type UpdateUserResponse struct {
	Name      *string   `json:"name,omitempty"`
	Job       *string   `json:"job,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SingleUserResponse wraps one user with the static support block.
type SingleUserResponse struct {
	Data    model.User `json:"data"`
	Support Support    `json:"support"`
}

// ToCreateUserResponse builds the creation envelope. The timestamp is
// assigned here, not read back from the store.
func ToCreateUserResponse(req CreateUserRequest, user *model.User) CreateUserResponse {
	return CreateUserResponse{
		Name:      req.Name,
		Job:       req.Job,
		ID:        strconv.FormatInt(user.ID, 10),
		CreatedAt: time.Now().UTC(),
	}
}

// ToUpdateUserResponse builds the update envelope, echoing the request.
func ToUpdateUserResponse(req UpdateUserRequest) UpdateUserResponse {
	return UpdateUserResponse{
		Name:      req.Name,
		Job:       req.Job,
		UpdatedAt: time.Now().UTC(),
	}
}
