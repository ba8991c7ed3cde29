package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/core"
)

// UploadHandler serves image uploads for profile pictures, cover photos and
// listing logos.
type UploadHandler struct {
	uploadService core.UploadService
	logger        *zap.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(us core.UploadService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{uploadService: us, logger: logger}
}

// Upload handles POST /api/v1/uploads/:kind with a multipart "image" field.
// The response {url, path} is what the client stores on the profile or
// listing via the normal update endpoints.
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := c.Param("kind")
	if !core.UploadKinds[kind] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown upload kind: " + kind})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "multipart field 'image' is required", Details: err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to open uploaded file", Details: err.Error()})
		return
	}
	defer file.Close()

	uid := currentUserID(c)
	ref, err := h.uploadService.Upload(
		c.Request.Context(),
		uid,
		kind,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.logger.Error("upload failed", zap.Error(err), zap.String("uid", uid), zap.String("kind", kind))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}
