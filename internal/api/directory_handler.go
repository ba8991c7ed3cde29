package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/core"
	"geniuses-backend-go/internal/models"
)

// DirectoryHandler serves the searchable, paginated directory.
type DirectoryHandler struct {
	directoryService core.DirectoryService
	likeService      core.LikeService
	pageSize         int
	logger           *zap.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(ds core.DirectoryService, ls core.LikeService, pageSize int, logger *zap.Logger) *DirectoryHandler {
	if pageSize <= 0 {
		pageSize = core.DefaultPageSize
	}
	return &DirectoryHandler{
		directoryService: ds,
		likeService:      ls,
		pageSize:         pageSize,
		logger:           logger,
	}
}

// GetDirectory handles GET /api/v1/directory?search=&category=&page=.
//
// Filtering and pagination are pure recomputations over the loaded set; a
// fresh search or a category change simply starts again at page 1, and "load
// more" raises page to grow the window additively. A store failure is a 502
// with the underlying message; zero matches is a 200 with an empty list.
func (h *DirectoryHandler) GetDirectory(c *gin.Context) {
	query := c.Query("search")
	category := c.DefaultQuery("category", "all")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	profiles, err := h.directoryService.LoadAll(c.Request.Context())
	if err != nil {
		h.logger.Error("directory load failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to load directory", Details: err.Error()})
		return
	}

	categories := h.directoryService.Categories(profiles)
	filtered := h.directoryService.Filter(profiles, query, category)
	window := h.directoryService.Paginate(filtered, h.pageSize, page)

	resp := DirectoryResponse{
		Profiles:   window,
		Categories: categories,
		Total:      len(filtered),
		Page:       page,
		PageSize:   h.pageSize,
		HasMore:    h.pageSize*page < len(filtered),
	}
	if resp.Profiles == nil {
		resp.Profiles = []*models.Profile{}
	}

	if uid := currentUserID(c); uid != "" {
		keys, err := h.likeService.LikedKeys(c.Request.Context(), uid)
		if err != nil {
			// Liked decorations are best effort; the directory itself loaded.
			h.logger.Warn("failed to decorate liked keys", zap.Error(err), zap.String("uid", uid))
		} else {
			resp.LikedKeys = keys
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetCategories handles GET /api/v1/directory/categories: the category set
// currently present in the directory, for filter dropdowns.
func (h *DirectoryHandler) GetCategories(c *gin.Context) {
	profiles, err := h.directoryService.LoadAll(c.Request.Context())
	if err != nil {
		h.logger.Error("directory load failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to load directory", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": h.directoryService.Categories(profiles)})
}
