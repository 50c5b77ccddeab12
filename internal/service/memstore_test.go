package service

import (
	"context"
	"errors"
	"sort"

	"github.com/mockres/mockres/internal/model"
	"github.com/mockres/mockres/internal/repository"
)

// memStore is an in-memory UserStore + ResourceStore for tests.
// Ids are assigned monotonically and never reused, like the real store.
type memStore struct {
	users     map[int64]model.User
	resources map[int64]model.Resource
	nextID    int64

	// failErr, when set, is returned by every store call to exercise
	// the store-failure translation in the services.
	failErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[int64]model.User),
		resources: make(map[int64]model.Resource),
		nextID:    1,
	}
}

var errStoreDown = errors.New("store unavailable")

func (m *memStore) GetUser(_ context.Context, id int64) (*model.User, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (m *memStore) ListUsers(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	if m.failErr != nil {
		return nil, 0, m.failErr
	}
	ids := make([]int64, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []model.User
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, m.users[ids[i]])
	}
	return out, int64(len(m.users)), nil
}

func (m *memStore) CreateUser(_ context.Context, user *model.User) error {
	if m.failErr != nil {
		return m.failErr
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = *user
	return nil
}

func (m *memStore) UpdateUser(_ context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	m.users[id] = u
	return &u, nil
}

func (m *memStore) DeleteUser(_ context.Context, id int64) (bool, error) {
	if m.failErr != nil {
		return false, m.failErr
	}
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func (m *memStore) CountUsers(_ context.Context) (int64, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	return int64(len(m.users)), nil
}

func (m *memStore) GetResource(_ context.Context, id int64) (*model.Resource, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	res, ok := m.resources[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}
	return &res, nil
}

func (m *memStore) ListResources(_ context.Context, offset, limit int) ([]model.Resource, int64, error) {
	if m.failErr != nil {
		return nil, 0, m.failErr
	}
	ids := make([]int64, 0, len(m.resources))
	for id := range m.resources {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []model.Resource
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, m.resources[ids[i]])
	}
	return out, int64(len(m.resources)), nil
}

func (m *memStore) CreateResource(_ context.Context, res *model.Resource) error {
	if m.failErr != nil {
		return m.failErr
	}
	res.ID = m.nextID
	m.nextID++
	m.resources[res.ID] = *res
	return nil
}

func (m *memStore) UpdateResource(_ context.Context, id int64, patch model.ResourcePatch) (*model.Resource, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	res, ok := m.resources[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}
	if patch.Name != nil {
		res.Name = *patch.Name
	}
	if patch.Year != nil {
		res.Year = *patch.Year
	}
	if patch.Color != nil {
		res.Color = *patch.Color
	}
	if patch.PantoneValue != nil {
		res.PantoneValue = *patch.PantoneValue
	}
	m.resources[id] = res
	return &res, nil
}

func (m *memStore) DeleteResource(_ context.Context, id int64) (bool, error) {
	if m.failErr != nil {
		return false, m.failErr
	}
	if _, ok := m.resources[id]; !ok {
		return false, nil
	}
	delete(m.resources, id)
	return true, nil
}

func (m *memStore) CountResources(_ context.Context) (int64, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	return int64(len(m.resources)), nil
}
