package core

import (
	"errors"

	"geniuses-backend-go/internal/db"
)

var (
	// ErrProfileNotFound is returned when a profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrListingNotFound is returned when a listing ID does not exist on the
	// addressed profile.
	ErrListingNotFound = errors.New("listing not found")
	// ErrConflict is returned when an update presents a stale revision; the
	// caller should reload and retry.
	ErrConflict = errors.New("profile revision conflict")
	// ErrInvalidListing is returned when a listing fails validation.
	ErrInvalidListing = errors.New("invalid listing")
	// ErrInvalidUpload is returned when an upload fails validation.
	ErrInvalidUpload = errors.New("invalid upload")
	// ErrUploadsDisabled is returned when no storage bucket is configured.
	ErrUploadsDisabled = errors.New("uploads are not configured")
)

// isNotFound reports whether err is the repository's missing-document error.
func isNotFound(err error) bool {
	return errors.Is(err, db.ErrNotFound)
}
