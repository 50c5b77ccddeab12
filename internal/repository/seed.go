package repository

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mockres/mockres/internal/model"
)

// Canonical fixture data matching the public reqres.in catalog: twelve
// users and twelve Pantone colors-of-the-year.
//
//go:embed data/users.json data/resources.json
var seedFS embed.FS

// Seed loads the embedded fixture data into any table that is currently
// empty. Tables that already hold rows are left alone, so restarting the
// server never duplicates or renumbers records.
func (r *Repository) Seed(ctx context.Context, logger *slog.Logger) error {
	if err := r.seedUsers(ctx, logger); err != nil {
		return err
	}
	return r.seedResources(ctx, logger)
}

func (r *Repository) seedUsers(ctx context.Context, logger *slog.Logger) error {
	count, err := r.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check user count before seeding: %w", err)
	}
	if count > 0 {
		logger.Info("users table already populated, skipping seed", "count", count)
		return nil
	}

	users, err := loadSeed[model.User]("data/users.json")
	if err != nil {
		return err
	}

	for i := range users {
		if err := r.CreateUser(ctx, &users[i]); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", users[i].Email, err)
		}
	}

	logger.Info("seeded users", "count", len(users))
	return nil
}

func (r *Repository) seedResources(ctx context.Context, logger *slog.Logger) error {
	count, err := r.CountResources(ctx)
	if err != nil {
		return fmt.Errorf("failed to check resource count before seeding: %w", err)
	}
	if count > 0 {
		logger.Info("resources table already populated, skipping seed", "count", count)
		return nil
	}

	resources, err := loadSeed[model.Resource]("data/resources.json")
	if err != nil {
		return err
	}

	for i := range resources {
		if err := r.CreateResource(ctx, &resources[i]); err != nil {
			return fmt.Errorf("failed to seed resource %q: %w", resources[i].Name, err)
		}
	}

	logger.Info("seeded resources", "count", len(resources))
	return nil
}

func loadSeed[T any](path string) ([]T, error) {
	raw, err := seedFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	return items, nil
}
