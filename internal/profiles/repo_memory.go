package profiles

import (
	"context"
	"sync"
)

// MemoryRepo stores profiles in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Profile)}
}

// Create stores the profile.
func (r *MemoryRepo) Create(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[profile.ID] = profile
	return nil
}

// GetByID returns a profile by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, profileID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.byID[profileID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

// Update replaces the stored profile.
func (r *MemoryRepo) Update(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[profile.ID]; !ok {
		return ErrNotFound
	}
	r.byID[profile.ID] = profile
	return nil
}

// Delete removes the profile.
func (r *MemoryRepo) Delete(ctx context.Context, profileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[profileID]; !ok {
		return ErrNotFound
	}
	delete(r.byID, profileID)
	return nil
}

// Exists reports whether a profile with the given ID is stored.
func (r *MemoryRepo) Exists(ctx context.Context, profileID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[profileID]
	return ok, nil
}
