package model

import "time"

// Profile is the candidate snapshot consumed by the renderer and the AI writer.
// Skills and Links are already decoded; storage-level JSON handling is the
// owning repository's concern.
type Profile struct {
	FullName   string   `json:"fullName"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Links      []Link   `json:"links,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	TargetRole string   `json:"targetRole,omitempty"`
	Language   string   `json:"language"`
}

// Link is a labeled URL attached to a profile.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Experience is one work-history entry. A nil EndDate means the position is
// ongoing and renders as "Present".
type Experience struct {
	JobTitle    string     `json:"jobTitle"`
	Company     string     `json:"company"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Template describes a CV layout choice. Only LayoutKey is read by the
// renderer; AtsScoreHint is advisory.
type Template struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	AtsScoreHint int    `json:"atsScoreHint"`
	LayoutKey    string `json:"htmlLayoutKey"`
}
