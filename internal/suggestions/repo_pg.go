package suggestions

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a suggestion.
func (r *PGRepo) Create(ctx context.Context, suggestion Suggestion) error {
	const query = `
INSERT INTO suggestions (id, subject, grade, resource_type, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		suggestion.ID,
		suggestion.Subject,
		suggestion.Grade,
		suggestion.ResourceType,
		suggestion.Description,
		suggestion.CreatedAt,
	)
	return err
}

// List returns suggestions ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Suggestion, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, subject, grade, resource_type, description, created_at
FROM suggestions
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Suggestion
	for rows.Next() {
		var suggestion Suggestion
		if err := rows.Scan(
			&suggestion.ID,
			&suggestion.Subject,
			&suggestion.Grade,
			&suggestion.ResourceType,
			&suggestion.Description,
			&suggestion.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, suggestion)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
