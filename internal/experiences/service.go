package experiences

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvision-backend/cv/model"
	"cvision-backend/internal/profiles"
)

// Input carries the experience fields accepted from the boundary.
type Input struct {
	JobTitle    string
	Company     string
	StartDate   time.Time
	EndDate     *time.Time
	Description string
}

func (in Input) valid() bool {
	return strings.TrimSpace(in.JobTitle) != "" &&
		strings.TrimSpace(in.Company) != "" &&
		!in.StartDate.IsZero()
}

// Service contains business logic for experiences.
type Service struct {
	Repo     Repo
	Profiles profiles.Repo
}

// Create validates ownership and stores a new experience for the profile.
func (s *Service) Create(ctx context.Context, profileID string, in Input) (Experience, error) {
	if profileID == "" || !in.valid() {
		return Experience{}, ErrInvalidInput
	}

	exists, err := s.Profiles.Exists(ctx, profileID)
	if err != nil {
		return Experience{}, err
	}
	if !exists {
		return Experience{}, ErrNotFound
	}

	now := time.Now().UTC()
	exp := Experience{
		ID:          uuid.NewString(),
		ProfileID:   profileID,
		JobTitle:    in.JobTitle,
		Company:     in.Company,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, exp); err != nil {
		return Experience{}, err
	}
	return exp, nil
}

// ListForProfile returns the profile's experiences, most recent start first.
func (s *Service) ListForProfile(ctx context.Context, profileID string) ([]Experience, error) {
	if profileID == "" {
		return nil, ErrInvalidInput
	}
	exists, err := s.Profiles.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.Repo.ListByProfile(ctx, profileID)
}

// Update replaces the mutable fields of an existing experience.
func (s *Service) Update(ctx context.Context, experienceID string, in Input) (Experience, error) {
	if experienceID == "" || !in.valid() {
		return Experience{}, ErrInvalidInput
	}

	existing, err := s.Repo.GetByID(ctx, experienceID)
	if err != nil {
		return Experience{}, err
	}

	existing.JobTitle = in.JobTitle
	existing.Company = in.Company
	existing.StartDate = in.StartDate
	existing.EndDate = in.EndDate
	existing.Description = in.Description
	existing.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, existing); err != nil {
		return Experience{}, err
	}
	return existing, nil
}

// Delete removes an experience.
func (s *Service) Delete(ctx context.Context, experienceID string) error {
	if experienceID == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, experienceID)
}

// DeleteByProfile removes all experiences owned by the given profile. It
// satisfies profiles.ExperiencePurger for the delete cascade.
func (s *Service) DeleteByProfile(ctx context.Context, profileID string) error {
	return s.Repo.DeleteByProfile(ctx, profileID)
}

// RenderModel converts a stored experience into the renderer's value snapshot.
func (e Experience) RenderModel() model.Experience {
	return model.Experience{
		JobTitle:    e.JobTitle,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
	}
}
