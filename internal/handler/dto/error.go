// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// ErrorDetail holds the human-readable error message.
type ErrorDetail struct {
	Error string `json:"error"`
}

// ErrorResponse is the uniform error body for every failing request:
// {"detail": {"error": "<message>"}}.
type ErrorResponse struct {
	Detail ErrorDetail `json:"detail"`
}

// NewError builds the uniform error envelope.
func NewError(message string) ErrorResponse {
	return ErrorResponse{Detail: ErrorDetail{Error: message}}
}
