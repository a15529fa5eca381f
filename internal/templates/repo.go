package templates

import (
	"context"
	"errors"
)

// ErrNotFound indicates the template does not exist.
var ErrNotFound = errors.New("not found")

// Repo defines read operations for templates.
type Repo interface {
	List(ctx context.Context) ([]Template, error)
	GetByID(ctx context.Context, templateID string) (Template, error)
}
