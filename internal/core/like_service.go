package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"geniuses-backend-go/internal/cache"
	"geniuses-backend-go/internal/db"
	"geniuses-backend-go/internal/models"
)

// likeService implements LikeService. It maintains the two mirrored like
// representations: the member's own set in userLikes (source of truth for
// "did I like this?") and the liker-UID set embedded in each listing (source
// of the public count). The two writes are independent round-trips; a failure
// between them leaves a window of inconsistency that the next successful
// toggle heals.
type likeService struct {
	likesRepo   db.LikesRepository
	profileRepo db.ProfileRepository
	likesCache  cache.LikesCache // may be nil; then every read hits the store
	logger      *zap.Logger
}

// NewLikeService creates a new LikeService instance. likesCache may be nil.
func NewLikeService(likesRepo db.LikesRepository, profileRepo db.ProfileRepository, likesCache cache.LikesCache, logger *zap.Logger) LikeService {
	return &likeService{
		likesRepo:   likesRepo,
		profileRepo: profileRepo,
		likesCache:  likesCache,
		logger:      logger,
	}
}

// LikedKeys returns the member's like-set, preferring the cache. Cache
// failures degrade to a store read; a store read refills the cache.
func (s *likeService) LikedKeys(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return []string{}, nil
	}

	if s.likesCache != nil {
		keys, ok, err := s.likesCache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn("likes cache read failed, falling back to store", zap.Error(err), zap.String("uid", userID))
		} else if ok {
			return keys, nil
		}
	}

	keys, err := s.likesRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.likesCache != nil {
		if err := s.likesCache.Set(ctx, userID, keys); err != nil {
			s.logger.Warn("likes cache fill failed", zap.Error(err), zap.String("uid", userID))
		}
	}
	return keys, nil
}

// IsLiked reports whether the member liked the listing. It never fails:
// no authenticated member, or any lookup error, reads as not-liked.
func (s *likeService) IsLiked(ctx context.Context, userID, profileID, listingID string) bool {
	if userID == "" {
		return false
	}
	keys, err := s.LikedKeys(ctx, userID)
	if err != nil {
		s.logger.Warn("IsLiked lookup failed", zap.Error(err), zap.String("uid", userID))
		return false
	}
	return containsKey(keys, models.LikeKey(profileID, listingID))
}

// ToggleLike flips the member's like on the listing.
//
// Protocol: (1) require a member; (2) read the current like-set to decide
// direction; (3) write the member's own set via an array-union/array-remove
// scoped to the one field, then update the cache to match (from here on the
// member's own state is committed); (4) transactionally add/remove the UID in
// the target listing's embedded like set. A failure in step 4 returns
// Success=false but does not roll back step 3: the window is accepted and
// self-heals on the next toggle.
func (s *likeService) ToggleLike(ctx context.Context, userID, profileID, listingID string) (*models.ToggleLikeResult, error) {
	if userID == "" {
		return &models.ToggleLikeResult{Success: false, Error: "authentication required"}, nil
	}
	if profileID == "" || listingID == "" {
		return &models.ToggleLikeResult{Success: false, Error: "profileId and listingId are required"}, nil
	}

	keys, err := s.LikedKeys(ctx, userID)
	if err != nil {
		return &models.ToggleLikeResult{Success: false, Error: err.Error()}, fmt.Errorf("failed to read like-set: %w", err)
	}

	key := models.LikeKey(profileID, listingID)
	wasLiked := containsKey(keys, key)

	if wasLiked {
		err = s.likesRepo.Remove(ctx, userID, key)
	} else {
		err = s.likesRepo.Add(ctx, userID, key)
	}
	if err != nil {
		return &models.ToggleLikeResult{Success: false, Error: err.Error()}, fmt.Errorf("failed to write like-set: %w", err)
	}

	// The member's own state is now committed; mirror it in the cache.
	if s.likesCache != nil {
		updated := withoutKey(keys, key)
		if !wasLiked {
			updated = append(updated, key)
		}
		if err := s.likesCache.Set(ctx, userID, updated); err != nil {
			s.logger.Warn("likes cache update failed, invalidating", zap.Error(err), zap.String("uid", userID))
			if err := s.likesCache.Invalidate(ctx, userID); err != nil {
				s.logger.Warn("likes cache invalidate failed", zap.Error(err), zap.String("uid", userID))
			}
		}
	}

	// Mirror the like into the listing's embedded set. The transaction
	// rewrites only this profile's businesses after locating the listing by
	// ID, so concurrent toggles on the same profile serialize instead of
	// losing writes.
	_, err = s.profileRepo.Mutate(ctx, profileID, func(p *models.Profile) error {
		listing := p.FindListing(listingID)
		if listing == nil {
			return fmt.Errorf("%w: %s on profile %s", ErrListingNotFound, listingID, profileID)
		}
		if wasLiked {
			listing.Likes = withoutKey(listing.Likes, userID)
		} else if !containsKey(listing.Likes, userID) {
			listing.Likes = append(listing.Likes, userID)
		}
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			err = fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
		}
		return &models.ToggleLikeResult{Success: false, Error: err.Error()}, fmt.Errorf("failed to update listing likes: %w", err)
	}

	return &models.ToggleLikeResult{Success: true, IsLiked: !wasLiked}, nil
}

// LikeCount is the size of the listing's like set; an absent set counts zero.
func (s *likeService) LikeCount(listing *models.Listing) int {
	if listing == nil {
		return 0
	}
	return len(listing.Likes)
}

// LikedListings resolves the member's like keys back to live listings for
// the "my likes" page. Keys whose profile or listing no longer exists are
// skipped silently: with ID-addressed listings a dangling key is harmless.
func (s *likeService) LikedListings(ctx context.Context, userID string) ([]models.LikedListing, error) {
	keys, err := s.LikedKeys(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.LikedListing, 0, len(keys))
	for _, key := range keys {
		profileID, listingID, ok := models.ParseLikeKey(key)
		if !ok {
			s.logger.Warn("skipping malformed like key", zap.String("key", key), zap.String("uid", userID))
			continue
		}
		profile, err := s.profileRepo.GetByID(ctx, profileID)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve like key '%s': %w", key, err)
		}
		listing := profile.FindListing(listingID)
		if listing == nil {
			continue
		}
		out = append(out, models.LikedListing{
			Key:         key,
			ProfileID:   profileID,
			ProfileName: profile.DisplayName,
			Listing:     *listing,
		})
	}
	return out, nil
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func withoutKey(keys []string, key string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
