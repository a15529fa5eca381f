package export

import (
	"context"
	"encoding/hex"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

// Kind selects the artifact flavor produced by an export. The content is the
// rendered HTML written verbatim under a kind-specific extension; real binary
// conversion is out of scope for this pipeline.
type Kind string

const (
	// KindPDF is the primary export kind.
	KindPDF Kind = "PDF"
	// KindDOCX is the secondary export kind.
	KindDOCX Kind = "DOCX"
)

func (k Kind) extension() string {
	if k == KindDOCX {
		return "docx"
	}
	return "pdf"
}

// Store persists artifact bytes under a relative key and returns the
// backend-specific location of the stored object.
type Store interface {
	Put(ctx context.Context, key string, content string) (location string, err error)
}

// Artifact records one completed export. Created exactly once per call and
// never mutated afterwards.
type Artifact struct {
	GeneratedCVID uuid.UUID
	FileType      string
	FilePath      string
	PublicURL     string
	CreatedAt     time.Time
}

// Exporter writes rendered CV content to an artifact store.
type Exporter struct {
	Store Store

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

// Export writes content as a new artifact for the given CV. Each call
// produces a fresh timestamped file under the CV's folder, so repeated
// exports accumulate history rather than overwrite. Exports within the same
// second for the same CV and kind can collide on filename; there is no
// disambiguating suffix today.
//
// Storage failures propagate unchanged; no artifact is returned and no
// partial-file cleanup is attempted.
func (e *Exporter) Export(ctx context.Context, cvID uuid.UUID, content string, kind Kind) (Artifact, error) {
	now := e.clock().UTC()

	folder := hex.EncodeToString(cvID[:])
	fileName := fmt.Sprintf("cv_%s.%s", now.Format("20060102150405"), kind.extension())

	location, err := e.Store.Put(ctx, path.Join(folder, fileName), content)
	if err != nil {
		return Artifact{}, fmt.Errorf("export %s for cv %s: %w", kind, cvID, err)
	}

	return Artifact{
		GeneratedCVID: cvID,
		FileType:      string(kind),
		FilePath:      location,
		PublicURL:     "/storage/" + folder + "/" + fileName,
		CreatedAt:     now,
	}, nil
}

func (e *Exporter) clock() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
