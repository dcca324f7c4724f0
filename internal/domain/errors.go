package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidMode     = errors.New("invalid view mode")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooManyPhotos   = errors.New("too many photos")
	ErrMediaFull       = errors.New("media store is full")
)

// ValidationError is a blocking, user-facing rejection of a form submission.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }
