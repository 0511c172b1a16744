package resumes

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyText       = errors.New("text is empty")
	ErrUnsupportedFile = errors.New("unsupported file type")
)
