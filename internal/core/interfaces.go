package core

import (
	"context"
	"io"

	"geniuses-backend-go/internal/models"
)

// ProfileService defines the interface for profile and listing operations.
type ProfileService interface {
	// GetOrCreate retrieves a member's profile, lazily writing the default
	// skeleton on first authenticated fetch. The bool reports creation.
	GetOrCreate(ctx context.Context, userID, displayName string) (*models.Profile, bool, error)
	Get(ctx context.Context, profileID string) (*models.Profile, error)
	// Update applies a revision-guarded partial update; ErrConflict when the
	// presented revision is stale.
	Update(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.Profile, error)
	AddListing(ctx context.Context, userID string, req models.ListingRequest) (*models.Profile, error)
	UpdateListing(ctx context.Context, userID, listingID string, req models.ListingRequest) (*models.Profile, error)
	RemoveListing(ctx context.Context, userID, listingID string) (*models.Profile, error)
}

// DirectoryService defines the interface for the directory search engine.
// Filter and Paginate are pure; only LoadAll touches the store.
type DirectoryService interface {
	LoadAll(ctx context.Context) ([]*models.Profile, error)
	Categories(profiles []*models.Profile) []string
	Filter(profiles []*models.Profile, query, category string) []*models.Profile
	Paginate(profiles []*models.Profile, pageSize, pageCount int) []*models.Profile
}

// LikeService defines the interface for the like engine.
type LikeService interface {
	// IsLiked reports whether the member liked the listing. Never fails:
	// unauthenticated or errored lookups read as false.
	IsLiked(ctx context.Context, userID, profileID, listingID string) bool
	// LikedKeys returns the member's like-set (cache-first).
	LikedKeys(ctx context.Context, userID string) ([]string, error)
	// ToggleLike flips the member's like on the listing. See
	// models.ToggleLikeResult for the unauthenticated contract.
	ToggleLike(ctx context.Context, userID, profileID, listingID string) (*models.ToggleLikeResult, error)
	// LikeCount is the size of the listing's like set.
	LikeCount(listing *models.Listing) int
	// LikedListings resolves the member's like keys back to live listings,
	// skipping keys whose profile or listing no longer exists.
	LikedListings(ctx context.Context, userID string) ([]models.LikedListing, error)
}

// UploadService defines the interface for image uploads to the blob store.
type UploadService interface {
	Upload(ctx context.Context, userID, kind, filename, contentType string, size int64, r io.Reader) (*models.ImageRef, error)
}
