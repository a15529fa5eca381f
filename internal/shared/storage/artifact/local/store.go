package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store writes export artifacts to the local filesystem. The base directory
// doubles as the static /storage root served by the HTTP layer.
type Store struct {
	baseDir string
}

// New creates a local artifact store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Put writes content at the given relative key, creating parent directories
// as needed. Directory creation is idempotent, so concurrent exports for the
// same CV racing on the same folder do not fail.
func (s *Store) Put(ctx context.Context, key string, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid artifact key")
	}

	fullPath := filepath.Join(s.baseDir, clean)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}

	return fullPath, nil
}
