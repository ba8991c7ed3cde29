package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/config"
	"geniuses-backend-go/internal/core"
	"geniuses-backend-go/internal/db"
	"geniuses-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes. Global middleware (logging,
// recovery, CORS) is expected to be applied to the router before this is
// called, typically in main.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	profileService core.ProfileService,
	directoryService core.DirectoryService,
	likeService core.LikeService,
	uploadService core.UploadService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized; routes cannot be set up")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient, logger)

	profileHandler := NewProfileHandler(profileService, logger)
	directoryHandler := NewDirectoryHandler(directoryService, likeService, appConfig.DirectoryPageSize, logger)
	likeHandler := NewLikeHandler(likeService, logger)
	uploadHandler := NewUploadHandler(uploadService, logger)

	apiV1 := router.Group("/api/v1")
	{
		// Called after client-side Firebase login/signup so the backend
		// profile exists.
		apiV1.POST("/users/initialize", authMW.VerifyToken(), profileHandler.InitializeProfile)

		// The directory is publicly readable; optional auth lets signed-in
		// members get their liked flags decorated in the same response.
		directoryGroup := apiV1.Group("/directory")
		{
			directoryGroup.GET("", authMW.OptionalToken(), directoryHandler.GetDirectory)
			directoryGroup.GET("/categories", directoryHandler.GetCategories)
		}

		profilesGroup := apiV1.Group("/profiles")
		{
			profilesGroup.GET("/me", authMW.VerifyToken(), profileHandler.GetMyProfile)
			profilesGroup.PUT("/me", authMW.VerifyToken(), profileHandler.UpdateMyProfile)
			profilesGroup.POST("/me/businesses", authMW.VerifyToken(), profileHandler.AddListing)
			profilesGroup.PUT("/me/businesses/:listingId", authMW.VerifyToken(), profileHandler.UpdateListing)
			profilesGroup.DELETE("/me/businesses/:listingId", authMW.VerifyToken(), profileHandler.RemoveListing)
			profilesGroup.GET("/options", profileHandler.GetProfileOptions)
			profilesGroup.GET("/:profileId", profileHandler.GetProfile)
		}

		likesGroup := apiV1.Group("/likes", authMW.VerifyToken())
		{
			likesGroup.POST("/toggle", likeHandler.ToggleLike)
			likesGroup.GET("", likeHandler.GetLikedListings)
		}

		apiV1.POST("/uploads/:kind", authMW.VerifyToken(), uploadHandler.Upload)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured under /api/v1 and /health")
}
