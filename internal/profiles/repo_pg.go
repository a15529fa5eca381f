package profiles

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new profile.
func (r *PGRepo) Create(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO profiles (
    id,
    full_name,
    email,
    phone,
    location,
    links_json,
    summary,
    skills_json,
    target_role,
    language,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.FullName,
		nullable(profile.Email),
		nullable(profile.Phone),
		nullable(profile.Location),
		nullable(profile.LinksJSON),
		nullable(profile.Summary),
		nullable(profile.SkillsJSON),
		nullable(profile.TargetRole),
		profile.Language,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

// GetByID returns a profile by ID.
func (r *PGRepo) GetByID(ctx context.Context, profileID string) (Profile, error) {
	const query = `
SELECT id, full_name, email, phone, location, links_json, summary, skills_json, target_role, language, created_at, updated_at
FROM profiles
WHERE id = $1`

	var (
		profile                                                 Profile
		email, phone, location, links, summary, skills, xtarget sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, profileID).Scan(
		&profile.ID,
		&profile.FullName,
		&email,
		&phone,
		&location,
		&links,
		&summary,
		&skills,
		&xtarget,
		&profile.Language,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	profile.Email = email.String
	profile.Phone = phone.String
	profile.Location = location.String
	profile.LinksJSON = links.String
	profile.Summary = summary.String
	profile.SkillsJSON = skills.String
	profile.TargetRole = xtarget.String
	return profile, nil
}

// Update replaces the mutable profile fields.
func (r *PGRepo) Update(ctx context.Context, profile Profile) error {
	const query = `
UPDATE profiles SET
    full_name = $2,
    email = $3,
    phone = $4,
    location = $5,
    links_json = $6,
    summary = $7,
    skills_json = $8,
    target_role = $9,
    language = $10,
    updated_at = $11
WHERE id = $1`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.FullName,
		nullable(profile.Email),
		nullable(profile.Phone),
		nullable(profile.Location),
		nullable(profile.LinksJSON),
		nullable(profile.Summary),
		nullable(profile.SkillsJSON),
		nullable(profile.TargetRole),
		profile.Language,
		profile.UpdatedAt,
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

// Delete removes the profile. Experiences cascade via the FK constraint.
func (r *PGRepo) Delete(ctx context.Context, profileID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, profileID)
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

// Exists reports whether a profile with the given ID is stored.
func (r *PGRepo) Exists(ctx context.Context, profileID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE id = $1)`, profileID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
