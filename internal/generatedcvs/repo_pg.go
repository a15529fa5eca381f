package generatedcvs

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

// Create inserts a new generated CV.
func (r *PGRepo) Create(ctx context.Context, cv GeneratedCV) error {
	const query = `
INSERT INTO generated_cvs (
    id,
    profile_id,
    template_id,
    title,
    target_role,
    language,
    html_preview,
    ats_report_json,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		cv.ID,
		cv.ProfileID,
		cv.TemplateID,
		cv.Title,
		cv.TargetRole,
		cv.Language,
		nullable(cv.HTMLPreview),
		nullable(cv.AtsReportJSON),
		cv.CreatedAt,
		cv.UpdatedAt,
	)
	return err
}

// GetByID returns a generated CV by ID.
func (r *PGRepo) GetByID(ctx context.Context, cvID string) (GeneratedCV, error) {
	const query = `
SELECT id, profile_id, template_id, title, target_role, language, html_preview, ats_report_json, created_at, updated_at
FROM generated_cvs
WHERE id = $1`

	var (
		cv           GeneratedCV
		html, report sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, cvID).Scan(
		&cv.ID,
		&cv.ProfileID,
		&cv.TemplateID,
		&cv.Title,
		&cv.TargetRole,
		&cv.Language,
		&html,
		&report,
		&cv.CreatedAt,
		&cv.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GeneratedCV{}, ErrNotFound
	}
	if err != nil {
		return GeneratedCV{}, err
	}
	cv.HTMLPreview = html.String
	cv.AtsReportJSON = report.String
	return cv, nil
}

// UpdateReport replaces the stored ATS report JSON.
func (r *PGRepo) UpdateReport(ctx context.Context, cvID, reportJSON string, updatedAt time.Time) error {
	const query = `
UPDATE generated_cvs SET ats_report_json = $2, updated_at = $3 WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, cvID, nullable(reportJSON), updatedAt)
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

// CreateFile records an export artifact for a CV.
func (r *PGRepo) CreateFile(ctx context.Context, file GeneratedFile) error {
	const query = `
INSERT INTO generated_files (
    id,
    generated_cv_id,
    file_type,
    file_path,
    public_url,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		file.ID,
		file.GeneratedCVID,
		file.FileType,
		nullable(file.FilePath),
		nullable(file.PublicURL),
		file.CreatedAt,
	)
	return err
}

// ListFilesByCV returns export records for a CV, oldest first.
func (r *PGRepo) ListFilesByCV(ctx context.Context, cvID string) ([]GeneratedFile, error) {
	const query = `
SELECT id, generated_cv_id, file_type, file_path, public_url, created_at
FROM generated_files
WHERE generated_cv_id = $1
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, cvID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]GeneratedFile, 0)
	for rows.Next() {
		var (
			file            GeneratedFile
			path, publicURL sql.NullString
		)
		if err := rows.Scan(&file.ID, &file.GeneratedCVID, &file.FileType, &path, &publicURL, &file.CreatedAt); err != nil {
			return nil, err
		}
		file.FilePath = path.String
		file.PublicURL = publicURL.String
		out = append(out, file)
	}
	return out, rows.Err()
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
