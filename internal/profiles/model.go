package profiles

import "time"

// Profile is the stored candidate profile. Links and skills are kept as raw
// JSON text columns; decoding happens at the edges and malformed payloads are
// ignored rather than surfaced.
type Profile struct {
	ID         string
	FullName   string
	Email      string
	Phone      string
	Location   string
	LinksJSON  string
	Summary    string
	SkillsJSON string
	TargetRole string
	Language   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
