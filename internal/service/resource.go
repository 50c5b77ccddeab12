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

// ResourceStore is the persistence contract the resource service depends on.
type ResourceStore interface {
	GetResource(ctx context.Context, id int64) (*model.Resource, error)
	ListResources(ctx context.Context, offset, limit int) ([]model.Resource, int64, error)
	CreateResource(ctx context.Context, res *model.Resource) error
	UpdateResource(ctx context.Context, id int64, patch model.ResourcePatch) (*model.Resource, error)
	DeleteResource(ctx context.Context, id int64) (bool, error)
	CountResources(ctx context.Context) (int64, error)
}

// ResourceService handles color resource business logic.
type ResourceService struct {
	store   ResourceStore
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewResourceService creates a new ResourceService.
func NewResourceService(store ResourceStore, logger *slog.Logger, recorder metrics.Recorder) *ResourceService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ResourceService{
		store:   store,
		logger:  logger,
		metrics: recorder,
	}
}

// Get returns the resource with the given id. Store failures are logged
// and reported as not-found.
func (s *ResourceService) Get(ctx context.Context, id int64) (*model.Resource, error) {
	res, err := s.store.GetResource(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrResourceNotFound) {
			s.logger.Error("resource lookup failed", "resource_id", id, "error", err)
		}
		return nil, ErrResourceNotFound
	}
	return res, nil
}

// List returns one page of resources ordered by ascending id. A store
// failure degrades to an empty page rather than an error.
func (s *ResourceService) List(ctx context.Context, page, size int) Page[model.Resource] {
	offset := (page - 1) * size
	resources, total, err := s.store.ListResources(ctx, offset, size)
	if err != nil {
		s.logger.Error("resource listing failed", "page", page, "size", size, "error", err)
		return NewPage[model.Resource](nil, page, size, 0)
	}
	return NewPage(resources, page, size, total)
}

// Create validates and persists a new resource. The year range is a
// business rule enforced here, not by the store.
func (s *ResourceService) Create(ctx context.Context, res *model.Resource) (*model.Resource, error) {
	if strings.TrimSpace(res.Name) == "" {
		return nil, ErrNameRequired
	}
	if !model.ValidYear(res.Year) {
		return nil, ErrInvalidYear
	}

	if err := s.store.CreateResource(ctx, res); err != nil {
		s.logger.Error("resource creation failed", "error", err)
		return nil, ErrResourceCreateFailed
	}

	s.metrics.IncResourceCreated()
	s.logger.Info("resource_created", "resource_id", res.ID, "name", res.Name)
	return res, nil
}

// Update applies a partial update; nil patch fields leave stored values
// untouched. The target must exist.
func (s *ResourceService) Update(ctx context.Context, id int64, patch model.ResourcePatch) (*model.Resource, error) {
	if patch.Year != nil && !model.ValidYear(*patch.Year) {
		return nil, ErrInvalidYear
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateResource(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		s.logger.Error("resource update failed", "resource_id", id, "error", err)
		return nil, ErrResourceUpdateFailed
	}

	s.metrics.IncResourceUpdated()
	s.logger.Info("resource_updated", "resource_id", id)
	return updated, nil
}

// Delete removes the resource; an id that never existed is not-found.
func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteResource(ctx, id)
	if err != nil {
		s.logger.Error("resource deletion failed", "resource_id", id, "error", err)
		return ErrResourceDeleteFailed
	}
	if !deleted {
		return ErrResourceNotFound
	}

	s.metrics.IncResourceDeleted()
	s.logger.Info("resource_deleted", "resource_id", id)
	return nil
}

// Count returns the total resource row count.
func (s *ResourceService) Count(ctx context.Context) (int64, error) {
	return s.store.CountResources(ctx)
}
