package resources

import (
	"context"
	"database/sql"
	"errors"

	"eduassist-backend/internal/classify"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a resource record.
func (r *PGRepo) Create(ctx context.Context, resource Resource) error {
	const query = `
INSERT INTO resources (
    id, query, subject, target_lang, format_label, format_score,
    file_name, storage_key, size_bytes, provider, model, prompt_version, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.DB.ExecContext(ctx, query,
		resource.ID,
		resource.Query,
		resource.Subject,
		resource.TargetLang,
		string(resource.FormatLabel),
		resource.FormatScore,
		resource.FileName,
		resource.StorageKey,
		resource.SizeBytes,
		resource.Provider,
		resource.Model,
		resource.PromptVersion,
		resource.CreatedAt,
	)
	return err
}

// GetByID returns a resource by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resource, error) {
	const query = `
SELECT id, query, subject, target_lang, format_label, format_score,
       file_name, storage_key, size_bytes, provider, model, prompt_version, created_at
FROM resources
WHERE id = $1
LIMIT 1`
	var resource Resource
	var label string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&resource.ID,
		&resource.Query,
		&resource.Subject,
		&resource.TargetLang,
		&label,
		&resource.FormatScore,
		&resource.FileName,
		&resource.StorageKey,
		&resource.SizeBytes,
		&resource.Provider,
		&resource.Model,
		&resource.PromptVersion,
		&resource.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resource{}, ErrNotFound
		}
		return Resource{}, err
	}
	resource.FormatLabel = classify.FormatLabel(label)
	return resource, nil
}

// List returns resources ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Resource, error) {
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
SELECT id, query, subject, target_lang, format_label, format_score,
       file_name, storage_key, size_bytes, provider, model, prompt_version, created_at
FROM resources
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resource
	for rows.Next() {
		var resource Resource
		var label string
		if err := rows.Scan(
			&resource.ID,
			&resource.Query,
			&resource.Subject,
			&resource.TargetLang,
			&label,
			&resource.FormatScore,
			&resource.FileName,
			&resource.StorageKey,
			&resource.SizeBytes,
			&resource.Provider,
			&resource.Model,
			&resource.PromptVersion,
			&resource.CreatedAt,
		); err != nil {
			return nil, err
		}
		resource.FormatLabel = classify.FormatLabel(label)
		out = append(out, resource)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
