package experiences

import "time"

// Experience is one stored work-history entry owned by a profile. A nil
// EndDate means the position is ongoing.
//
// End-before-start entries are accepted as-is; ordering is owned by the
// caller that authored the history and the renderer only sorts on start date.
type Experience struct {
	ID          string
	ProfileID   string
	JobTitle    string
	Company     string
	StartDate   time.Time
	EndDate     *time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
