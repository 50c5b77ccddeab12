package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mockres/mockres/internal/model"
)

// GetResource retrieves a resource by its primary key.
func (r *Repository) GetResource(ctx context.Context, id int64) (*model.Resource, error) {
	query := `
		SELECT id, name, year, color, pantone_value
		FROM resources
		WHERE id = $1
	`

	res, err := scanResource(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return res, nil
}

// ListResources returns a window of resources ordered by ascending id,
// plus the total unfiltered row count for pagination math.
func (r *Repository) ListResources(ctx context.Context, offset, limit int) ([]model.Resource, int64, error) {
	total, err := r.CountResources(ctx)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, year, color, pantone_value
		FROM resources
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	resources := make([]model.Resource, 0, limit)
	for rows.Next() {
		var res model.Resource
		if err := rows.Scan(&res.ID, &res.Name, &res.Year, &res.Color, &res.PantoneValue); err != nil {
			return nil, 0, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate resource rows: %w", err)
	}

	return resources, total, nil
}

// CreateResource inserts a new resource row. The database assigns the id,
// which is written back into the given model.
func (r *Repository) CreateResource(ctx context.Context, res *model.Resource) error {
	query := `
		INSERT INTO resources (name, year, color, pantone_value)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		res.Name,
		res.Year,
		res.Color,
		res.PantoneValue,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	return nil
}

// UpdateResource overwrites the non-nil fields of patch on the stored row
// and returns the updated resource. Returns ErrResourceNotFound if the id
// does not exist.
func (r *Repository) UpdateResource(ctx context.Context, id int64, patch model.ResourcePatch) (*model.Resource, error) {
	if patch.IsEmpty() {
		return r.GetResource(ctx, id)
	}

	set := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Year != nil {
		add("year", *patch.Year)
	}
	if patch.Color != nil {
		add("color", *patch.Color)
	}
	if patch.PantoneValue != nil {
		add("pantone_value", *patch.PantoneValue)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE resources
		SET %s
		WHERE id = $%d
		RETURNING id, name, year, color, pantone_value
	`, strings.Join(set, ", "), len(args))

	res, err := scanResource(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}

	return res, nil
}

// DeleteResource removes the row if present and reports whether a row was
// actually removed.
func (r *Repository) DeleteResource(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resource: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountResources returns the total resource row count.
func (r *Repository) CountResources(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resources`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	return total, nil
}

func scanResource(row pgx.Row) (*model.Resource, error) {
	var res model.Resource
	if err := row.Scan(&res.ID, &res.Name, &res.Year, &res.Color, &res.PantoneValue); err != nil {
		return nil, err
	}
	return &res, nil
}
