package templates

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// List returns all templates.
func (r *PGRepo) List(ctx context.Context) ([]Template, error) {
	const query = `
SELECT id, name, category, ats_score_hint, subtitle, html_layout_key
FROM templates
ORDER BY name ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Template, 0)
	for rows.Next() {
		var (
			t        Template
			subtitle sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.AtsScoreHint, &subtitle, &t.HTMLLayoutKey); err != nil {
			return nil, err
		}
		t.Subtitle = subtitle.String
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID returns a template by ID.
func (r *PGRepo) GetByID(ctx context.Context, templateID string) (Template, error) {
	const query = `
SELECT id, name, category, ats_score_hint, subtitle, html_layout_key
FROM templates
WHERE id = $1`

	var (
		t        Template
		subtitle sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, templateID).Scan(
		&t.ID, &t.Name, &t.Category, &t.AtsScoreHint, &subtitle, &t.HTMLLayoutKey)
	if errors.Is(err, sql.ErrNoRows) {
		return Template{}, ErrNotFound
	}
	if err != nil {
		return Template{}, err
	}
	t.Subtitle = subtitle.String
	return t, nil
}
