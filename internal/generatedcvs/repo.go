package generatedcvs

import (
	"context"
	"time"
)

// Repo defines persistence operations for generated CVs and their files.
type Repo interface {
	Create(ctx context.Context, cv GeneratedCV) error
	GetByID(ctx context.Context, cvID string) (GeneratedCV, error)
	UpdateReport(ctx context.Context, cvID, reportJSON string, updatedAt time.Time) error
	CreateFile(ctx context.Context, file GeneratedFile) error
	// ListFilesByCV returns export records for a CV, oldest first.
	ListFilesByCV(ctx context.Context, cvID string) ([]GeneratedFile, error)
}
