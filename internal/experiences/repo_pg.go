package experiences

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new experience.
func (r *PGRepo) Create(ctx context.Context, exp Experience) error {
	const query = `
INSERT INTO experiences (
    id,
    profile_id,
    job_title,
    company,
    start_date,
    end_date,
    description,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		exp.ID,
		exp.ProfileID,
		exp.JobTitle,
		exp.Company,
		exp.StartDate,
		nullableTime(exp.EndDate),
		nullableString(exp.Description),
		exp.CreatedAt,
		exp.UpdatedAt,
	)
	return err
}

// GetByID returns an experience by ID.
func (r *PGRepo) GetByID(ctx context.Context, experienceID string) (Experience, error) {
	const query = `
SELECT id, profile_id, job_title, company, start_date, end_date, description, created_at, updated_at
FROM experiences
WHERE id = $1`

	exp, err := scanExperience(r.DB.QueryRowContext(ctx, query, experienceID))
	if errors.Is(err, sql.ErrNoRows) {
		return Experience{}, ErrNotFound
	}
	if err != nil {
		return Experience{}, err
	}
	return exp, nil
}

// ListByProfile returns a profile's experiences, most recent start first.
func (r *PGRepo) ListByProfile(ctx context.Context, profileID string) ([]Experience, error) {
	const query = `
SELECT id, profile_id, job_title, company, start_date, end_date, description, created_at, updated_at
FROM experiences
WHERE profile_id = $1
ORDER BY start_date DESC, created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Experience, 0)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}

// Update replaces the mutable experience fields.
func (r *PGRepo) Update(ctx context.Context, exp Experience) error {
	const query = `
UPDATE experiences SET
    job_title = $2,
    company = $3,
    start_date = $4,
    end_date = $5,
    description = $6,
    updated_at = $7
WHERE id = $1`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		exp.ID,
		exp.JobTitle,
		exp.Company,
		exp.StartDate,
		nullableTime(exp.EndDate),
		nullableString(exp.Description),
		exp.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the experience.
func (r *PGRepo) Delete(ctx context.Context, experienceID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1`, experienceID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByProfile removes all experiences owned by the given profile.
func (r *PGRepo) DeleteByProfile(ctx context.Context, profileID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM experiences WHERE profile_id = $1`, profileID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperience(row rowScanner) (Experience, error) {
	var (
		exp         Experience
		endDate     sql.NullTime
		description sql.NullString
	)
	err := row.Scan(
		&exp.ID,
		&exp.ProfileID,
		&exp.JobTitle,
		&exp.Company,
		&exp.StartDate,
		&endDate,
		&description,
		&exp.CreatedAt,
		&exp.UpdatedAt,
	)
	if err != nil {
		return Experience{}, err
	}
	if endDate.Valid {
		t := endDate.Time
		exp.EndDate = &t
	}
	exp.Description = description.String
	return exp, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
