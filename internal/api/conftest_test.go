package api

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"geniuses-backend-go/internal/middleware"
	"geniuses-backend-go/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser injects the authenticated member the way the auth middleware would.
func asUser(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid != "" {
			c.Set(middleware.ContextUserID, uid)
			c.Set(middleware.ContextDisplayName, "Test Member")
		}
		c.Next()
	}
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// stubDirectoryService serves a canned profile set. Filter keeps profiles
// whose first listing name contains the query; Paginate is the usual
// prefix window. The real engine is covered in the core package; these
// stubs only need to make HTTP wiring observable.
type stubDirectoryService struct {
	profiles []*models.Profile
	loadErr  error
}

func (s *stubDirectoryService) LoadAll(ctx context.Context) ([]*models.Profile, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.profiles, nil
}

func (s *stubDirectoryService) Categories(profiles []*models.Profile) []string {
	return []string{"Finance", "Technology"}
}

func (s *stubDirectoryService) Filter(profiles []*models.Profile, query, category string) []*models.Profile {
	if query == "" {
		return profiles
	}
	var out []*models.Profile
	for _, p := range profiles {
		if len(p.Businesses) > 0 && strings.Contains(strings.ToLower(p.Businesses[0].Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out
}

func (s *stubDirectoryService) Paginate(profiles []*models.Profile, pageSize, pageCount int) []*models.Profile {
	end := pageSize * pageCount
	if end > len(profiles) {
		end = len(profiles)
	}
	return profiles[:end]
}

// stubLikeService returns canned results.
type stubLikeService struct {
	keys          []string
	keysErr       error
	toggleResult  *models.ToggleLikeResult
	toggleErr     error
	likedListings []models.LikedListing
	likedErr      error
}

func (s *stubLikeService) IsLiked(ctx context.Context, userID, profileID, listingID string) bool {
	for _, k := range s.keys {
		if k == models.LikeKey(profileID, listingID) {
			return true
		}
	}
	return false
}

func (s *stubLikeService) LikedKeys(ctx context.Context, userID string) ([]string, error) {
	return s.keys, s.keysErr
}

func (s *stubLikeService) ToggleLike(ctx context.Context, userID, profileID, listingID string) (*models.ToggleLikeResult, error) {
	return s.toggleResult, s.toggleErr
}

func (s *stubLikeService) LikeCount(listing *models.Listing) int {
	if listing == nil {
		return 0
	}
	return len(listing.Likes)
}

func (s *stubLikeService) LikedListings(ctx context.Context, userID string) ([]models.LikedListing, error) {
	return s.likedListings, s.likedErr
}

// stubProfileService returns canned profiles and errors.
type stubProfileService struct {
	profile *models.Profile
	created bool
	err     error
}

func (s *stubProfileService) GetOrCreate(ctx context.Context, userID, displayName string) (*models.Profile, bool, error) {
	return s.profile, s.created, s.err
}

func (s *stubProfileService) Get(ctx context.Context, profileID string) (*models.Profile, error) {
	return s.profile, s.err
}

func (s *stubProfileService) Update(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.Profile, error) {
	return s.profile, s.err
}

func (s *stubProfileService) AddListing(ctx context.Context, userID string, req models.ListingRequest) (*models.Profile, error) {
	return s.profile, s.err
}

func (s *stubProfileService) UpdateListing(ctx context.Context, userID, listingID string, req models.ListingRequest) (*models.Profile, error) {
	return s.profile, s.err
}

func (s *stubProfileService) RemoveListing(ctx context.Context, userID, listingID string) (*models.Profile, error) {
	return s.profile, s.err
}

func newTestRouter(uid string, register func(r *gin.Engine)) *gin.Engine {
	router := gin.New()
	router.Use(asUser(uid))
	register(router)
	return router
}
