package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mockres/mockres/internal/metrics"
	"github.com/mockres/mockres/internal/model"
	"github.com/mockres/mockres/internal/repository"
	"github.com/mockres/mockres/internal/service"
)

// memStore is an in-memory store fake backing the full HTTP stack in tests.
type memStore struct {
	users     map[int64]model.User
	resources map[int64]model.Resource
	nextID    int64
	failErr   error
}

var errStoreDown = errors.New("store unavailable")

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[int64]model.User),
		resources: make(map[int64]model.Resource),
		nextID:    1,
	}
}

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
	ids := sortedKeys(m.users)
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
	ids := sortedKeys(m.resources)
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

func sortedKeys[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter assembles the full router over an in-memory store, wired
// exactly like cmd/api does.
func newTestRouter(store *memStore) (*chi.Mux, *metrics.InMemoryRecorder) {
	logger := discardLogger()
	recorder := metrics.NewInMemory()

	userSvc := service.NewUserService(store, logger, recorder)
	resourceSvc := service.NewResourceService(store, logger, recorder)
	authSvc := service.NewAuthService(logger, recorder)

	router := NewRouter(Deps{
		Base:      New("test"),
		Users:     NewUserHandler(userSvc, logger),
		Resources: NewResourceHandler(resourceSvc, logger),
		Auth:      NewAuthHandler(authSvc, logger),
		Status:    NewStatusHandler(store, "test"),
		Metrics:   NewMetricsHandler(recorder),
		Logger:    logger,
	})
	return router, recorder
}

func seedTestUsers(t *testing.T, store *memStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		u := model.User{
			Email:     "user@example.com",
			FirstName: "First",
			LastName:  "Last",
			Avatar:    "https://reqres.in/img/faces/1-image.jpg",
		}
		if err := store.CreateUser(context.Background(), &u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
}

func seedTestResources(t *testing.T, store *memStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		res := model.Resource{
			Name:         "cerulean",
			Year:         2000,
			Color:        "#98B2D1",
			PantoneValue: "15-4020",
		}
		if err := store.CreateResource(context.Background(), &res); err != nil {
			t.Fatalf("seed resource: %v", err)
		}
	}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail struct {
			Error string `json:"error"`
		} `json:"detail"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body.Detail.Error
}
