package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mockres/mockres/internal/metrics"
	"github.com/mockres/mockres/internal/model"
	"github.com/mockres/mockres/internal/repository"
)

// UserStore is the persistence contract the user service depends on.
// *repository.Repository satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]model.User, int64, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	CountUsers(ctx context.Context) (int64, error)
}

// UserService handles user business logic.
type UserService struct {
	store   UserStore
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, logger *slog.Logger, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		logger:  logger,
		metrics: recorder,
	}
}

// Get returns the user with the given id. Store failures are logged and
// reported as not-found; the caller never sees a raw store error.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Error("user lookup failed", "user_id", id, "error", err)
		}
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns one page of users ordered by ascending id. A store failure
// degrades to an empty page rather than an error.
func (s *UserService) List(ctx context.Context, page, size int) Page[model.User] {
	offset := (page - 1) * size
	users, total, err := s.store.ListUsers(ctx, offset, size)
	if err != nil {
		s.logger.Error("user listing failed", "page", page, "size", size, "error", err)
		return NewPage[model.User](nil, page, size, 0)
	}
	return NewPage(users, page, size, total)
}

// Create validates the public name+job contract, synthesizes the stored
// identity, and persists it. The store assigns the id.
func (s *UserService) Create(ctx context.Context, name, job string) (*model.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(job) == "" {
		return nil, ErrJobRequired
	}

	user := newUserFromName(name)
	if err := s.store.CreateUser(ctx, user); err != nil {
		s.logger.Error("user creation failed", "error", err)
		return nil, ErrUserCreateFailed
	}

	s.metrics.IncUserCreated()
	s.logger.Info("user_created", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Update applies a partial update. Only a supplied name changes stored
// fields (first and last name); email and avatar are never touched. The
// target must exist.
func (s *UserService) Update(ctx context.Context, id int64, name *string) (*model.User, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// A job-only update touches no stored field, but it is still a
	// successful mutation: count and log it like any other.
	if name == nil {
		s.metrics.IncUserUpdated()
		s.logger.Info("user_updated", "user_id", id)
		return existing, nil
	}

	first, last := splitName(*name)
	patch := model.UserPatch{FirstName: &first, LastName: &last}

	updated, err := s.store.UpdateUser(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("user update failed", "user_id", id, "error", err)
		return nil, ErrUserUpdateFailed
	}

	s.metrics.IncUserUpdated()
	s.logger.Info("user_updated", "user_id", id)
	return updated, nil
}

// Delete removes the user. Deleting an id that never existed is
// not-found, so delete-then-get behaves consistently.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		s.logger.Error("user deletion failed", "user_id", id, "error", err)
		return ErrUserDeleteFailed
	}
	if !deleted {
		return ErrUserNotFound
	}

	s.metrics.IncUserDeleted()
	s.logger.Info("user_deleted", "user_id", id)
	return nil
}

// Count returns the total user row count.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.store.CountUsers(ctx)
}
