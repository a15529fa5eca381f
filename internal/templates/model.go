package templates

import "cvision-backend/cv/model"

// Template is a stored CV layout descriptor. The seeded set is small and
// read-only; there is no create/update surface.
type Template struct {
	ID            string
	Name          string
	Category      string
	AtsScoreHint  int
	Subtitle      string
	HTMLLayoutKey string
}

// Categories form a small closed set.
const (
	CategoryATSMinimal = "ATS_MINIMAL"
	CategoryCreative   = "CREATIVE"
	CategoryAcademic   = "ACADEMIC"
)

// RenderModel converts the stored template into the renderer's value snapshot.
func (t Template) RenderModel() model.Template {
	return model.Template{
		Name:         t.Name,
		Category:     t.Category,
		AtsScoreHint: t.AtsScoreHint,
		LayoutKey:    t.HTMLLayoutKey,
	}
}
