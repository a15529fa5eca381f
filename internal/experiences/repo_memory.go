package experiences

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores experiences in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Experience
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Experience)}
}

// Create stores the experience.
func (r *MemoryRepo) Create(ctx context.Context, exp Experience) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[exp.ID] = exp
	return nil
}

// GetByID returns an experience by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, experienceID string) (Experience, error) {
	if err := ctx.Err(); err != nil {
		return Experience{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	exp, ok := r.byID[experienceID]
	if !ok {
		return Experience{}, ErrNotFound
	}
	return exp, nil
}

// ListByProfile returns a profile's experiences sorted by start date, newest
// first. The sort is stable so same-day entries keep insertion order.
func (r *MemoryRepo) ListByProfile(ctx context.Context, profileID string) ([]Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Experience, 0)
	for _, exp := range r.byID {
		if exp.ProfileID == profileID {
			out = append(out, exp)
		}
	}
	// Map iteration order is random; fix it before the stable date sort.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

// Update replaces the stored experience.
func (r *MemoryRepo) Update(ctx context.Context, exp Experience) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[exp.ID]; !ok {
		return ErrNotFound
	}
	r.byID[exp.ID] = exp
	return nil
}

// Delete removes the experience.
func (r *MemoryRepo) Delete(ctx context.Context, experienceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[experienceID]; !ok {
		return ErrNotFound
	}
	delete(r.byID, experienceID)
	return nil
}

// DeleteByProfile removes all experiences owned by the given profile.
func (r *MemoryRepo) DeleteByProfile(ctx context.Context, profileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, exp := range r.byID {
		if exp.ProfileID == profileID {
			delete(r.byID, id)
		}
	}
	return nil
}
