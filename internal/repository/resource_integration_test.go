//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/mockres/mockres/internal/model"
	"github.com/mockres/mockres/internal/testutil"
)

func TestIntegrationResourceRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newResourceTestEnv(t)

	res := testutil.NewTestResource(t, "cerulean", 2000)
	if err := repo.CreateResource(ctx, res); err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}
	if res.ID == 0 {
		t.Fatal("expected store-assigned id")
	}

	retrieved, err := repo.GetResource(ctx, res.ID)
	if err != nil {
		t.Fatalf("GetResource failed: %v", err)
	}
	if retrieved.Name != "cerulean" || retrieved.Year != 2000 {
		t.Errorf("Resource mismatch: got %q %d", retrieved.Name, retrieved.Year)
	}
	if retrieved.PantoneValue != res.PantoneValue {
		t.Errorf("PantoneValue mismatch: got %q, want %q", retrieved.PantoneValue, res.PantoneValue)
	}
}

func TestIntegrationResourceRepository_GetMissing(t *testing.T) {
	ctx, repo := newResourceTestEnv(t)

	_, err := repo.GetResource(ctx, 999999)
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Expected ErrResourceNotFound, got: %v", err)
	}
}

func TestIntegrationResourceRepository_List(t *testing.T) {
	ctx, repo := newResourceTestEnv(t)

	for i := 0; i < 7; i++ {
		res := testutil.NewTestResource(t, "cerulean", 2000+i)
		if err := repo.CreateResource(ctx, res); err != nil {
			t.Fatalf("CreateResource failed: %v", err)
		}
	}

	resources, total, err := repo.ListResources(ctx, 0, 6)
	if err != nil {
		t.Fatalf("ListResources failed: %v", err)
	}
	if total != 7 {
		t.Errorf("Expected total 7, got %d", total)
	}
	if len(resources) != 6 {
		t.Errorf("Expected 6 rows, got %d", len(resources))
	}
}

func TestIntegrationResourceRepository_UpdatePartial(t *testing.T) {
	ctx, repo := newResourceTestEnv(t)

	res := testutil.NewTestResource(t, "cerulean", 2000)
	if err := repo.CreateResource(ctx, res); err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}

	name := "ultra violet"
	year := 2018
	updated, err := repo.UpdateResource(ctx, res.ID, model.ResourcePatch{
		Name: &name,
		Year: &year,
	})
	if err != nil {
		t.Fatalf("UpdateResource failed: %v", err)
	}
	if updated.Name != "ultra violet" || updated.Year != 2018 {
		t.Errorf("Update not applied: got %q %d", updated.Name, updated.Year)
	}
	if updated.Color != res.Color || updated.PantoneValue != res.PantoneValue {
		t.Error("Expected unsupplied fields untouched")
	}
}

func TestIntegrationResourceRepository_StoreDoesNotEnforceYearRange(t *testing.T) {
	ctx, repo := newResourceTestEnv(t)

	// The year range is a service-layer rule; the store accepts any value.
	res := testutil.NewTestResource(t, "cerulean", 1850)
	if err := repo.CreateResource(ctx, res); err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}

	retrieved, err := repo.GetResource(ctx, res.ID)
	if err != nil {
		t.Fatalf("GetResource failed: %v", err)
	}
	if retrieved.Year != 1850 {
		t.Errorf("Expected year 1850 stored verbatim, got %d", retrieved.Year)
	}
}

func TestIntegrationResourceRepository_Delete(t *testing.T) {
	ctx, repo := newResourceTestEnv(t)

	res := testutil.NewTestResource(t, "cerulean", 2000)
	if err := repo.CreateResource(ctx, res); err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}

	deleted, err := repo.DeleteResource(ctx, res.ID)
	if err != nil {
		t.Fatalf("DeleteResource failed: %v", err)
	}
	if !deleted {
		t.Error("Expected delete to report a removed row")
	}

	deleted, err = repo.DeleteResource(ctx, res.ID)
	if err != nil {
		t.Fatalf("DeleteResource (repeat) failed: %v", err)
	}
	if deleted {
		t.Error("Expected repeat delete to report no removed row")
	}
}

func newResourceTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL, 4)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetResourcesSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset resources schema: %v", err)
	}

	return ctx, repo
}
