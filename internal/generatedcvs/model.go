package generatedcvs

import "time"

// GeneratedCV is one rendered CV kept for preview, scoring and export. The
// HTML preview and the ATS report are stored alongside the generation inputs.
type GeneratedCV struct {
	ID            string
	ProfileID     string
	TemplateID    string
	Title         string
	TargetRole    string
	Language      string
	HTMLPreview   string
	AtsReportJSON string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GeneratedFile records one export artifact produced from a generated CV.
// Files accumulate per CV; re-exporting never overwrites an earlier record.
type GeneratedFile struct {
	ID            string
	GeneratedCVID string
	FileType      string
	FilePath      string
	PublicURL     string
	CreatedAt     time.Time
}
