package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/core"
	"geniuses-backend-go/internal/middleware"
	"geniuses-backend-go/internal/models"
)

// ProfileHandler serves profile and listing CRUD for the authenticated
// member, plus public profile views.
type ProfileHandler struct {
	profileService core.ProfileService
	logger         *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(ps core.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: ps, logger: logger}
}

// InitializeProfile handles POST /api/v1/users/initialize: called after
// client-side Firebase login/signup so the profile document exists before
// any other call needs it.
func (h *ProfileHandler) InitializeProfile(c *gin.Context) {
	uid := currentUserID(c)
	displayName := c.GetString(middleware.ContextDisplayName)

	profile, created, err := h.profileService.GetOrCreate(c.Request.Context(), uid, displayName)
	if err != nil {
		h.logger.Error("profile initialize failed", zap.Error(err), zap.String("uid", uid))
		respondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, InitializeResponse{Profile: profile, Created: created})
}

// GetMyProfile handles GET /api/v1/profiles/me. Like the initialize call it
// lazily creates the skeleton, so a first fetch never 404s.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	uid := currentUserID(c)
	profile, _, err := h.profileService.GetOrCreate(c.Request.Context(), uid, c.GetString(middleware.ContextDisplayName))
	if err != nil {
		h.logger.Error("profile fetch failed", zap.Error(err), zap.String("uid", uid))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile handles GET /api/v1/profiles/:profileId, viewing another
// member's profile. Public; no lazy creation here.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID := c.Param("profileId")
	profile, err := h.profileService.Get(c.Request.Context(), profileID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile handles PUT /api/v1/profiles/me. The body must carry the
// revision the client last read; a stale revision answers 409 and the client
// reloads.
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	uid := currentUserID(c)
	profile, err := h.profileService.Update(c.Request.Context(), uid, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddListing handles POST /api/v1/profiles/me/businesses.
func (h *ProfileHandler) AddListing(c *gin.Context) {
	var req models.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	uid := currentUserID(c)
	profile, err := h.profileService.AddListing(c.Request.Context(), uid, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpdateListing handles PUT /api/v1/profiles/me/businesses/:listingId.
func (h *ProfileHandler) UpdateListing(c *gin.Context) {
	var req models.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	uid := currentUserID(c)
	profile, err := h.profileService.UpdateListing(c.Request.Context(), uid, c.Param("listingId"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveListing handles DELETE /api/v1/profiles/me/businesses/:listingId.
func (h *ProfileHandler) RemoveListing(c *gin.Context) {
	uid := currentUserID(c)
	profile, err := h.profileService.RemoveListing(c.Request.Context(), uid, c.Param("listingId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfileOptions handles GET /api/v1/profiles/options: the fixed pickers
// the profile-editing surface renders.
func (h *ProfileHandler) GetProfileOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"businessCategories": models.BusinessCategories,
		"sectors":            models.Sectors,
		"initialSkills":      models.InitialSkills,
		"initialEvents":      models.InitialEvents,
	})
}
