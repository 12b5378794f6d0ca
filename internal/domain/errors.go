package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a record already exists.
	ErrConflict = errors.New("already exists")
	// ErrDuplicateDisplayID is returned by repositories when a display ID
	// violates the uniqueness constraint.
	ErrDuplicateDisplayID = errors.New("duplicate display id")
	// ErrTooManyImages is returned when a gallery would exceed MaxGalleryImages.
	ErrTooManyImages = errors.New("too many images")
	// ErrEmptyPatch is returned when an update carries no fields.
	ErrEmptyPatch = errors.New("at least one field must be provided")
)
