package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"geniuses-backend-go/internal/db"
	"geniuses-backend-go/internal/models"
)

// DefaultPageSize is the directory window increment: the initial view shows
// one page and "load more" raises the page count.
const DefaultPageSize = 15

// directoryService implements DirectoryService.
type directoryService struct {
	profileRepo db.ProfileRepository
	logger      *zap.Logger
}

// NewDirectoryService creates a new DirectoryService instance.
func NewDirectoryService(profileRepo db.ProfileRepository, logger *zap.Logger) DirectoryService {
	return &directoryService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// LoadAll fetches every profile and keeps those with at least one valid
// listing (non-empty name), replacing Businesses with the valid subset.
// A store failure surfaces as an error; there is no partial-result fallback.
func (s *directoryService) LoadAll(ctx context.Context) ([]*models.Profile, error) {
	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load directory profiles: %w", err)
	}

	var out []*models.Profile
	for _, p := range profiles {
		valid := p.ValidListings()
		if len(valid) == 0 {
			continue
		}
		cp := *p
		cp.Businesses = valid
		out = append(out, &cp)
	}

	s.logger.Debug("directory loaded",
		zap.Int("profiles_fetched", len(profiles)),
		zap.Int("profiles_listed", len(out)),
	)
	return out, nil
}

// Categories returns the sorted, deduplicated union of listing categories
// across the given profiles. Comparison is case-sensitive.
func (s *directoryService) Categories(profiles []*models.Profile) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range profiles {
		for _, l := range p.Businesses {
			if l.Category == "" {
				continue
			}
			if _, ok := seen[l.Category]; ok {
				continue
			}
			seen[l.Category] = struct{}{}
			out = append(out, l.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Filter applies the free-text query and category filter. It is pure: the
// input profiles are not mutated, order is preserved, and a profile survives
// iff at least one of its listings survives (with Businesses replaced by the
// surviving subset).
//
// Text matching is word-OR over field-OR: the query is lowercased and split
// on whitespace, and a listing matches when ANY word is a case-insensitive
// substring of ANY searchable field. "pink yoga" therefore matches a listing
// containing just "yoga". An empty query matches everything.
//
// Category matching is exact and case-sensitive; "all" (or empty) disables it.
func (s *directoryService) Filter(profiles []*models.Profile, query, category string) []*models.Profile {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(query)))

	var out []*models.Profile
	for _, p := range profiles {
		var surviving []models.Listing
		for _, l := range p.Businesses {
			if !matchesCategory(&l, category) {
				continue
			}
			if !matchesQuery(&l, words) {
				continue
			}
			surviving = append(surviving, l)
		}
		if len(surviving) == 0 {
			continue
		}
		cp := *p
		cp.Businesses = surviving
		out = append(out, &cp)
	}
	return out
}

// Paginate slices the first pageSize*pageCount profiles off the filtered
// list. It is slice semantics, not a filter: raising pageCount grows the
// window additively ("load more"). Non-positive arguments fall back to the
// defaults (page size 15, one page).
func (s *directoryService) Paginate(profiles []*models.Profile, pageSize, pageCount int) []*models.Profile {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageCount <= 0 {
		pageCount = 1
	}
	n := pageSize * pageCount
	if n >= len(profiles) {
		return profiles
	}
	return profiles[:n]
}

func matchesCategory(l *models.Listing, category string) bool {
	if category == "" || category == "all" {
		return true
	}
	return l.Category == category
}

func matchesQuery(l *models.Listing, words []string) bool {
	if len(words) == 0 {
		return true
	}
	fields := searchFields(l)
	for _, w := range words {
		for _, f := range fields {
			if strings.Contains(f, w) {
				return true
			}
		}
	}
	return false
}

// searchFields enumerates the lowercased searchable text of a listing. The
// list is deliberately explicit: a new listing field only becomes searchable
// by being added here.
func searchFields(l *models.Listing) []string {
	fields := make([]string, 0, 16)
	add := func(v string) {
		if v != "" {
			fields = append(fields, strings.ToLower(v))
		}
	}

	add(l.Name)
	add(l.Headline)
	add(l.Description)
	add(l.Category)
	add(l.Location)
	add(l.Website)
	add(l.Phone)
	add(l.Email)
	for _, skill := range l.Skills {
		add(skill)
	}
	for _, svc := range l.Services {
		add(svc.Name)
		add(svc.Description)
	}
	add(l.SocialAddresses.Facebook)
	add(l.SocialAddresses.LinkedIn)
	add(l.SocialAddresses.Twitter)
	add(l.SocialAddresses.Instagram)
	add(l.SocialAddresses.YouTube)
	add(l.SocialAddresses.Website)

	return fields
}
