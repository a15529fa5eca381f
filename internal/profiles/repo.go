package profiles

import "context"

// Repo defines persistence operations for profiles.
type Repo interface {
	Create(ctx context.Context, profile Profile) error
	GetByID(ctx context.Context, profileID string) (Profile, error)
	Update(ctx context.Context, profile Profile) error
	// Delete removes the profile. Owned experiences are removed with it.
	Delete(ctx context.Context, profileID string) error
	Exists(ctx context.Context, profileID string) (bool, error)
}
