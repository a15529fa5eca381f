package profiles

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvision-backend/cv/model"
)

const defaultLanguage = "EN"

// ExperiencePurger removes all experiences owned by a profile. It backs the
// delete cascade when repositories cannot enforce it themselves (the
// in-memory mode); the Postgres FK handles it on that path too.
type ExperiencePurger interface {
	DeleteByProfile(ctx context.Context, profileID string) error
}

// Input carries the decoded profile fields accepted from the boundary.
type Input struct {
	FullName   string
	Email      string
	Phone      string
	Location   string
	Summary    string
	Links      []model.Link
	Skills     []string
	TargetRole string
	Language   string
}

// Service contains business logic for profiles.
type Service struct {
	Repo        Repo
	Experiences ExperiencePurger
}

// Create validates and stores a new profile.
func (s *Service) Create(ctx context.Context, in Input) (Profile, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return Profile{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	profile := Profile{
		ID:         uuid.NewString(),
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		Location:   in.Location,
		LinksJSON:  encodeJSON(in.Links),
		Summary:    in.Summary,
		SkillsJSON: encodeJSON(in.Skills),
		TargetRole: in.TargetRole,
		Language:   languageOrDefault(in.Language),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repo.Create(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Get returns a profile by ID.
func (s *Service) Get(ctx context.Context, profileID string) (Profile, error) {
	if profileID == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, profileID)
}

// Update replaces the mutable fields of an existing profile.
func (s *Service) Update(ctx context.Context, profileID string, in Input) (Profile, error) {
	if profileID == "" || strings.TrimSpace(in.FullName) == "" {
		return Profile{}, ErrInvalidInput
	}

	existing, err := s.Repo.GetByID(ctx, profileID)
	if err != nil {
		return Profile{}, err
	}

	existing.FullName = in.FullName
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.Location = in.Location
	existing.LinksJSON = encodeJSON(in.Links)
	existing.Summary = in.Summary
	existing.SkillsJSON = encodeJSON(in.Skills)
	existing.TargetRole = in.TargetRole
	existing.Language = languageOrDefault(in.Language)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, existing); err != nil {
		return Profile{}, err
	}
	return existing, nil
}

// Delete removes a profile and its owned experiences.
func (s *Service) Delete(ctx context.Context, profileID string) error {
	if profileID == "" {
		return ErrInvalidInput
	}
	if s.Experiences != nil {
		if err := s.Experiences.DeleteByProfile(ctx, profileID); err != nil {
			return err
		}
	}
	return s.Repo.Delete(ctx, profileID)
}

// RenderModel converts the stored profile into the value snapshot consumed by
// the renderer and the AI writer. Malformed links or skills JSON is ignored,
// leaving the field empty.
func (p Profile) RenderModel() model.Profile {
	var links []model.Link
	if p.LinksJSON != "" {
		_ = json.Unmarshal([]byte(p.LinksJSON), &links)
	}
	var skills []string
	if p.SkillsJSON != "" {
		_ = json.Unmarshal([]byte(p.SkillsJSON), &skills)
	}
	return model.Profile{
		FullName:   p.FullName,
		Email:      p.Email,
		Phone:      p.Phone,
		Location:   p.Location,
		Summary:    p.Summary,
		Links:      links,
		Skills:     skills,
		TargetRole: p.TargetRole,
		Language:   p.Language,
	}
}

func encodeJSON(v any) string {
	switch val := v.(type) {
	case []model.Link:
		if len(val) == 0 {
			return ""
		}
	case []string:
		if len(val) == 0 {
			return ""
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func languageOrDefault(lang string) string {
	if strings.TrimSpace(lang) == "" {
		return defaultLanguage
	}
	return lang
}
