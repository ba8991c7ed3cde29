package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"geniuses-backend-go/internal/core"
	"geniuses-backend-go/internal/middleware"
	"geniuses-backend-go/internal/models"
)

// ErrorResponse is the shared error DTO for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DirectoryResponse is the payload of GET /directory: one filtered,
// paginated window over the directory plus the data the client needs to
// render filters and "load more".
type DirectoryResponse struct {
	Profiles   []*models.Profile `json:"profiles"`
	Categories []string          `json:"categories"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	HasMore    bool              `json:"hasMore"`
	// LikedKeys holds the requesting member's like keys so the client can
	// mark hearts; empty for anonymous requests.
	LikedKeys []string `json:"likedKeys,omitempty"`
}

// InitializeResponse is the payload of POST /users/initialize.
type InitializeResponse struct {
	Profile *models.Profile `json:"profile"`
	Created bool            `json:"created"`
}

// LikedListingsResponse is the payload of GET /likes.
type LikedListingsResponse struct {
	Likes []models.LikedListing `json:"likes"`
}

// currentUserID pulls the authenticated UID from the Gin context; empty for
// anonymous requests on optional-auth routes.
func currentUserID(c *gin.Context) string {
	if raw, exists := c.Get(middleware.ContextUserID); exists {
		if uid, ok := raw.(string); ok {
			return uid
		}
	}
	return ""
}

// respondServiceError maps core/service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrProfileNotFound), errors.Is(err, core.ErrListingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "profile was modified concurrently, reload and retry", Details: err.Error()})
	case errors.Is(err, core.ErrInvalidListing), errors.Is(err, core.ErrInvalidUpload):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrUploadsDisabled):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Details: err.Error()})
	}
}
