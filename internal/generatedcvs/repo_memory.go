package generatedcvs

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores generated CVs in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]GeneratedCV
	filesBy map[string][]GeneratedFile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]GeneratedCV),
		filesBy: make(map[string][]GeneratedFile),
	}
}

// Create stores the generated CV.
func (r *MemoryRepo) Create(ctx context.Context, cv GeneratedCV) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[cv.ID] = cv
	return nil
}

// GetByID returns a generated CV by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, cvID string) (GeneratedCV, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedCV{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cv, ok := r.byID[cvID]
	if !ok {
		return GeneratedCV{}, ErrNotFound
	}
	return cv, nil
}

// UpdateReport replaces the stored ATS report JSON.
func (r *MemoryRepo) UpdateReport(ctx context.Context, cvID, reportJSON string, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cv, ok := r.byID[cvID]
	if !ok {
		return ErrNotFound
	}
	cv.AtsReportJSON = reportJSON
	cv.UpdatedAt = updatedAt
	r.byID[cvID] = cv
	return nil
}

// CreateFile records an export artifact for a CV.
func (r *MemoryRepo) CreateFile(ctx context.Context, file GeneratedFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filesBy[file.GeneratedCVID] = append(r.filesBy[file.GeneratedCVID], file)
	return nil
}

// ListFilesByCV returns export records for a CV, oldest first.
func (r *MemoryRepo) ListFilesByCV(ctx context.Context, cvID string) ([]GeneratedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	files := r.filesBy[cvID]
	r.mu.RUnlock()

	out := make([]GeneratedFile, len(files))
	copy(out, files)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
