package cache

import "context"

// LikesCache is a narrow, explicitly invalidated cache of each member's own
// like-set, keyed by UID. It exists so the directory and like surfaces can
// answer "did I like this?" without a Firestore read per request; it is never
// the source of truth. Implementations must treat their own failures as cache
// misses, not operation failures.
type LikesCache interface {
	// Get returns the cached like keys and whether the entry was present.
	Get(ctx context.Context, userID string) (keys []string, ok bool, err error)
	// Set replaces the member's cached like-set.
	Set(ctx context.Context, userID string, keys []string) error
	// Invalidate drops the member's entry.
	Invalidate(ctx context.Context, userID string) error
}
