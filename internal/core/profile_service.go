package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/db"
	"geniuses-backend-go/internal/models"
)

// profileService implements ProfileService.
type profileService struct {
	profileRepo db.ProfileRepository
	logger      *zap.Logger
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(profileRepo db.ProfileRepository, logger *zap.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetOrCreate retrieves the member's profile, writing the default skeleton
// on first authenticated fetch. Returns the profile and whether it was
// created.
func (s *profileService) GetOrCreate(ctx context.Context, userID, displayName string) (*models.Profile, bool, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err == nil {
		return profile, false, nil
	}
	if !isNotFound(err) {
		return nil, false, fmt.Errorf("failed to get profile '%s': %w", userID, err)
	}

	newProfile := models.DefaultProfile(userID, displayName)
	if createErr := s.profileRepo.Create(ctx, newProfile); createErr != nil {
		return nil, false, fmt.Errorf("failed to create profile '%s' after not found: %w", userID, createErr)
	}
	s.logger.Info("created default profile", zap.String("uid", userID))
	return newProfile, true, nil
}

// Get retrieves a profile by ID; ErrProfileNotFound when absent.
func (s *profileService) Get(ctx context.Context, profileID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
		}
		return nil, fmt.Errorf("failed to get profile '%s': %w", profileID, err)
	}
	return profile, nil
}

// Update applies the provided fields to the member's profile. The request
// revision must match the stored revision or the update fails with
// ErrConflict; the caller reloads and retries.
func (s *profileService) Update(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.Profile, error) {
	updated, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		if p.Revision != req.Revision {
			return fmt.Errorf("%w: have %d, presented %d", ErrConflict, p.Revision, req.Revision)
		}
		applyProfileUpdate(p, req)
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
		}
		return nil, err
	}
	return updated, nil
}

// AddListing validates and appends a new listing with a freshly generated
// stable ID.
func (s *profileService) AddListing(ctx context.Context, userID string, req models.ListingRequest) (*models.Profile, error) {
	if err := validateListing(req); err != nil {
		return nil, err
	}

	listing := listingFromRequest(req)
	listing.ID = uuid.NewString()

	updated, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		p.Businesses = append(p.Businesses, listing)
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
		}
		return nil, err
	}
	s.logger.Info("listing added", zap.String("uid", userID), zap.String("listing_id", listing.ID))
	return updated, nil
}

// UpdateListing rewrites the addressed listing's editable fields. The
// listing's ID and like set are preserved.
func (s *profileService) UpdateListing(ctx context.Context, userID, listingID string, req models.ListingRequest) (*models.Profile, error) {
	if err := validateListing(req); err != nil {
		return nil, err
	}

	updated, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		listing := p.FindListing(listingID)
		if listing == nil {
			return fmt.Errorf("%w: %s", ErrListingNotFound, listingID)
		}
		replacement := listingFromRequest(req)
		replacement.ID = listing.ID
		replacement.Likes = listing.Likes
		*listing = replacement
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
		}
		return nil, err
	}
	return updated, nil
}

// RemoveListing deletes the addressed listing. Foreign like keys pointing at
// it are not repaired; ID addressing leaves them dangling but harmless, and
// reads skip them.
func (s *profileService) RemoveListing(ctx context.Context, userID, listingID string) (*models.Profile, error) {
	updated, err := s.profileRepo.Mutate(ctx, userID, func(p *models.Profile) error {
		for i := range p.Businesses {
			if p.Businesses[i].ID == listingID {
				p.Businesses = append(p.Businesses[:i], p.Businesses[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrListingNotFound, listingID)
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
		}
		return nil, err
	}
	s.logger.Info("listing removed", zap.String("uid", userID), zap.String("listing_id", listingID))
	return updated, nil
}

func validateListing(req models.ListingRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidListing)
	}
	if !models.IsValidCategory(req.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidListing, req.Category)
	}
	return nil
}

func listingFromRequest(req models.ListingRequest) models.Listing {
	return models.Listing{
		Name:            req.Name,
		Website:         req.Website,
		Headline:        req.Headline,
		Category:        req.Category,
		Description:     req.Description,
		Location:        req.Location,
		Phone:           req.Phone,
		Email:           req.Email,
		Logo:            req.Logo,
		SocialAddresses: req.SocialAddresses,
		Skills:          req.Skills,
		Services:        req.Services,
	}
}

func applyProfileUpdate(p *models.Profile, req models.UpdateProfileRequest) {
	if req.DisplayName != nil {
		p.DisplayName = *req.DisplayName
	}
	if req.CountryOfResidence != nil {
		p.CountryOfResidence = *req.CountryOfResidence
	}
	if req.Social != nil {
		p.Social = *req.Social
	}
	if req.ProfilePicture != nil {
		p.ProfilePicture = *req.ProfilePicture
	}
	if req.CoverPhoto != nil {
		p.CoverPhoto = *req.CoverPhoto
	}
	if req.EventsAttended != nil {
		p.EventsAttended = *req.EventsAttended
	}
	if req.AboutWorkWithJoe != nil {
		p.AboutWorkWithJoe = *req.AboutWorkWithJoe
	}
	if req.HopingToConnectWith != nil {
		p.HopingToConnectWith = *req.HopingToConnectWith
	}
}
