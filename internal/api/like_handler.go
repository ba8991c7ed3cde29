package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/core"
	"geniuses-backend-go/internal/models"
)

// LikeHandler serves like toggling and the member's liked-listings view.
type LikeHandler struct {
	likeService core.LikeService
	logger      *zap.Logger
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(ls core.LikeService, logger *zap.Logger) *LikeHandler {
	return &LikeHandler{likeService: ls, logger: logger}
}

// ToggleLike handles POST /api/v1/likes/toggle.
//
// The route carries required auth, so an unauthenticated request never gets
// this far; the service still degrades to a Success=false result if it does.
// An I/O failure mid-protocol also answers with the result body (the client
// shows the button in its prior state) rather than a bare 5xx.
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	var req models.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	uid := currentUserID(c)
	result, err := h.likeService.ToggleLike(c.Request.Context(), uid, req.ProfileID, req.ListingID)
	if err != nil {
		// A stale client toggling a listing that no longer exists is a 404,
		// not a gateway failure.
		if errors.Is(err, core.ErrListingNotFound) || errors.Is(err, core.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, result)
			return
		}
		h.logger.Error("toggle like failed",
			zap.Error(err),
			zap.String("uid", uid),
			zap.String("profile_id", req.ProfileID),
			zap.String("listing_id", req.ListingID),
		)
		c.JSON(http.StatusBadGateway, result)
		return
	}
	if !result.Success {
		// Only the unauthenticated degradation reaches here without an error.
		c.JSON(http.StatusUnauthorized, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetLikedListings handles GET /api/v1/likes: the member's liked listings
// resolved to live directory entries.
func (h *LikeHandler) GetLikedListings(c *gin.Context) {
	uid := currentUserID(c)
	likes, err := h.likeService.LikedListings(c.Request.Context(), uid)
	if err != nil {
		h.logger.Error("failed to resolve liked listings", zap.Error(err), zap.String("uid", uid))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to load likes", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, LikedListingsResponse{Likes: likes})
}
