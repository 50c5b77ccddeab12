// Package service provides business logic for the application.
package service

import "errors"

// Service errors. Handlers map these to HTTP statuses and messages;
// raw store errors never cross this boundary.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrResourceNotFound = errors.New("resource not found")

	ErrNameRequired = errors.New("name is required")
	ErrJobRequired  = errors.New("job is required")
	ErrInvalidYear  = errors.New("year out of range")

	ErrUserCreateFailed = errors.New("failed to create user")
	ErrUserUpdateFailed = errors.New("failed to update user")
	ErrUserDeleteFailed = errors.New("failed to delete user")

	ErrResourceCreateFailed = errors.New("failed to create resource")
	ErrResourceUpdateFailed = errors.New("failed to update resource")
	ErrResourceDeleteFailed = errors.New("failed to delete resource")

	ErrMissingEmail    = errors.New("missing email")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrMissingPassword = errors.New("missing password")
)
