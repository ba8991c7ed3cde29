package models

import (
	"fmt"
	"strings"
	"time"
)

// UserLikes is the per-member document in the userLikes collection, keyed by
// UID. LikedListings holds composite like keys; it mirrors the Likes sets
// embedded in listings for read efficiency. The two representations are kept
// eventually consistent by the like engine, not transactionally.
type UserLikes struct {
	ID            string    `json:"id" firestore:"-"` // UID, document ID
	LikedListings []string  `json:"likedBusinesses" firestore:"likedBusinesses"`
	UpdatedAt     time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// LikeKey builds the composite key identifying a likeable listing.
func LikeKey(profileID, listingID string) string {
	return fmt.Sprintf("%s-%s", profileID, listingID)
}

// ParseLikeKey splits a composite like key back into profile and listing IDs.
// Firebase UIDs never contain '-', so splitting on the first dash is
// unambiguous even though listing IDs (uuids) contain dashes themselves.
func ParseLikeKey(key string) (profileID, listingID string, ok bool) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// ToggleLikeResult is the outcome of a like toggle. An unauthenticated call
// is not an error: it yields Success=false with an explanatory message and
// the caller is expected to send the user to login.
type ToggleLikeResult struct {
	Success bool   `json:"success"`
	IsLiked bool   `json:"isLiked"`
	Error   string `json:"error,omitempty"`
}

// LikedListing is a liked directory entry resolved back to its source
// profile, as shown on the member's "my likes" page.
type LikedListing struct {
	Key         string  `json:"key"`
	ProfileID   string  `json:"profileId"`
	ProfileName string  `json:"profileName"`
	Listing     Listing `json:"listing"`
}
