package generatedcvs

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvision-backend/cv/ats"
	"cvision-backend/cv/export"
	"cvision-backend/cv/model"
	"cvision-backend/cv/render"
	"cvision-backend/internal/experiences"
	"cvision-backend/internal/profiles"
	"cvision-backend/internal/templates"
)

const defaultLanguage = "EN"

// GenerateInput carries the generation request resolved at the boundary.
type GenerateInput struct {
	ProfileID          string
	TemplateID         string
	TargetRole         string
	Language           string
	JobDescriptionText string
}

// Service contains business logic for generated CVs: rendering, scoring and
// exporting.
type Service struct {
	Repo        Repo
	Profiles    profiles.Repo
	Experiences experiences.Repo
	Templates   templates.Repo
	Exporter    *export.Exporter
}

// Generate renders a CV for the profile and template, scores it against the
// job description and persists both the preview and the report.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (GeneratedCV, ats.Report, error) {
	if in.ProfileID == "" || in.TemplateID == "" {
		return GeneratedCV{}, ats.Report{}, ErrInvalidInput
	}

	profile, err := s.Profiles.GetByID(ctx, in.ProfileID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return GeneratedCV{}, ats.Report{}, ErrProfileNotFound
		}
		return GeneratedCV{}, ats.Report{}, err
	}

	template, err := s.Templates.GetByID(ctx, in.TemplateID)
	if err != nil {
		if errors.Is(err, templates.ErrNotFound) {
			return GeneratedCV{}, ats.Report{}, ErrTemplateNotFound
		}
		return GeneratedCV{}, ats.Report{}, err
	}

	stored, err := s.Experiences.ListByProfile(ctx, in.ProfileID)
	if err != nil {
		return GeneratedCV{}, ats.Report{}, err
	}
	exps := make([]model.Experience, 0, len(stored))
	for _, e := range stored {
		exps = append(exps, e.RenderModel())
	}

	language := in.Language
	if strings.TrimSpace(language) == "" {
		language = defaultLanguage
	}

	html := render.Render(profile.RenderModel(), exps, template.RenderModel(), in.TargetRole, language)

	now := time.Now().UTC()
	cv := GeneratedCV{
		ID:          uuid.NewString(),
		ProfileID:   profile.ID,
		TemplateID:  template.ID,
		Title:       in.TargetRole + " CV",
		TargetRole:  in.TargetRole,
		Language:    language,
		HTMLPreview: html,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, cv); err != nil {
		return GeneratedCV{}, ats.Report{}, err
	}

	report := ats.Score(html, in.JobDescriptionText)
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return GeneratedCV{}, ats.Report{}, err
	}
	cv.AtsReportJSON = string(reportJSON)
	cv.UpdatedAt = time.Now().UTC()
	if err := s.Repo.UpdateReport(ctx, cv.ID, cv.AtsReportJSON, cv.UpdatedAt); err != nil {
		return GeneratedCV{}, ats.Report{}, err
	}

	return cv, report, nil
}

// Get returns a generated CV with its stored report and export files.
func (s *Service) Get(ctx context.Context, cvID string) (GeneratedCV, ats.Report, []GeneratedFile, error) {
	if cvID == "" {
		return GeneratedCV{}, ats.Report{}, nil, ErrInvalidInput
	}

	cv, err := s.Repo.GetByID(ctx, cvID)
	if err != nil {
		return GeneratedCV{}, ats.Report{}, nil, err
	}

	var report ats.Report
	if cv.AtsReportJSON != "" {
		// A report that no longer parses is treated as absent.
		_ = json.Unmarshal([]byte(cv.AtsReportJSON), &report)
	}

	files, err := s.Repo.ListFilesByCV(ctx, cvID)
	if err != nil {
		return GeneratedCV{}, ats.Report{}, nil, err
	}

	return cv, report, files, nil
}

// Export writes the CV's rendered content as a new artifact of the given kind
// and records it. Storage failures propagate; no file record is written for a
// failed export.
func (s *Service) Export(ctx context.Context, cvID string, kind export.Kind) (GeneratedFile, error) {
	if cvID == "" {
		return GeneratedFile{}, ErrInvalidInput
	}

	cv, err := s.Repo.GetByID(ctx, cvID)
	if err != nil {
		return GeneratedFile{}, err
	}

	id, err := uuid.Parse(cv.ID)
	if err != nil {
		return GeneratedFile{}, err
	}

	artifact, err := s.Exporter.Export(ctx, id, cv.HTMLPreview, kind)
	if err != nil {
		return GeneratedFile{}, err
	}

	file := GeneratedFile{
		ID:            uuid.NewString(),
		GeneratedCVID: cv.ID,
		FileType:      artifact.FileType,
		FilePath:      artifact.FilePath,
		PublicURL:     artifact.PublicURL,
		CreatedAt:     artifact.CreatedAt,
	}
	if err := s.Repo.CreateFile(ctx, file); err != nil {
		return GeneratedFile{}, err
	}
	return file, nil
}

// CheckATS re-scores an existing CV against new job text. The stored report
// is left untouched; the result is advisory.
func (s *Service) CheckATS(ctx context.Context, cvID, jobDescription string) (ats.Report, error) {
	if cvID == "" {
		return ats.Report{}, ErrInvalidInput
	}
	cv, err := s.Repo.GetByID(ctx, cvID)
	if err != nil {
		return ats.Report{}, err
	}
	return ats.Score(cv.HTMLPreview, jobDescription), nil
}
