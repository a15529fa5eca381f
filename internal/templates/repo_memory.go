package templates

import "context"

// MemoryRepo serves the seeded template set from memory. The set is fixed at
// construction, so no locking is needed.
type MemoryRepo struct {
	templates []Template
}

// NewMemoryRepo constructs a MemoryRepo seeded with the default templates,
// mirroring the database seed migration.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{templates: []Template{
		{
			ID:            "11111111-1111-1111-1111-111111111111",
			Name:          "ATS Minimal",
			Category:      CategoryATSMinimal,
			AtsScoreHint:  95,
			Subtitle:      "Single-column, ATS-friendly layout",
			HTMLLayoutKey: "ats_minimal",
		},
		{
			ID:            "22222222-2222-2222-2222-222222222222",
			Name:          "Modern Tech",
			Category:      CategoryCreative,
			AtsScoreHint:  90,
			Subtitle:      "Clean layout suitable for tech roles",
			HTMLLayoutKey: "modern_tech",
		},
		{
			ID:            "33333333-3333-3333-3333-333333333333",
			Name:          "Academic Classic",
			Category:      CategoryAcademic,
			AtsScoreHint:  92,
			Subtitle:      "Emphasizes education and projects",
			HTMLLayoutKey: "academic_classic",
		},
	}}
}

// List returns all templates.
func (r *MemoryRepo) List(ctx context.Context) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out, nil
}

// GetByID returns a template by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, templateID string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	for _, t := range r.templates {
		if t.ID == templateID {
			return t, nil
		}
	}
	return Template{}, ErrNotFound
}
