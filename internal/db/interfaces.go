package db

import (
	"context"

	"geniuses-backend-go/internal/models"
)

// ProfileRepository defines the interface for profile document storage.
type ProfileRepository interface {
	// GetByID retrieves a single profile; ErrNotFound when absent.
	GetByID(ctx context.Context, profileID string) (*models.Profile, error)
	// Create writes a new profile document keyed by profile.ID.
	Create(ctx context.Context, profile *models.Profile) error
	// GetAll retrieves every profile document. Documents that fail to decode
	// are logged and skipped rather than aborting the load.
	GetAll(ctx context.Context) ([]*models.Profile, error)
	// Mutate runs mutate against the current document state inside a
	// transaction and writes the result back with the revision bumped.
	// Errors returned by mutate abort the transaction and are passed through.
	Mutate(ctx context.Context, profileID string, mutate func(p *models.Profile) error) (*models.Profile, error)
	// Delete removes a profile document.
	Delete(ctx context.Context, profileID string) error
}

// LikesRepository defines the interface for the userLikes collection.
type LikesRepository interface {
	// Get returns the member's liked-listing keys; an absent document is an
	// empty set, not an error.
	Get(ctx context.Context, userID string) ([]string, error)
	// Add atomically adds a composite like key to the member's set, creating
	// the document if needed.
	Add(ctx context.Context, userID, key string) error
	// Remove atomically removes a composite like key from the member's set.
	Remove(ctx context.Context, userID, key string) error
}
