package generatedcvs

import "errors"

var (
	// ErrNotFound indicates the generated CV was not found.
	ErrNotFound = errors.New("not found")

	// ErrProfileNotFound indicates the source profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
