package experiences

import "context"

// Repo defines persistence operations for experiences.
type Repo interface {
	Create(ctx context.Context, exp Experience) error
	GetByID(ctx context.Context, experienceID string) (Experience, error)
	// ListByProfile returns a profile's experiences, most recent start first.
	ListByProfile(ctx context.Context, profileID string) ([]Experience, error)
	Update(ctx context.Context, exp Experience) error
	Delete(ctx context.Context, experienceID string) error
	DeleteByProfile(ctx context.Context, profileID string) error
}
