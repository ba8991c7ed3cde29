package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/api"
	"geniuses-backend-go/internal/cache"
	"geniuses-backend-go/internal/config"
	"geniuses-backend-go/internal/core"
	"geniuses-backend-go/internal/db"
	"geniuses-backend-go/internal/middleware"
)

func main() {
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to load application configuration: %v", err)
	}

	releaseMode := strings.ToLower(appConfig.GinMode) == "release"

	var zapLogger *zap.Logger
	if releaseMode {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Application configuration loaded.")

	// Firebase Admin SDK: Firestore, Auth and (optionally) Storage clients.
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Admin SDK", zap.Error(err))
	}

	firestoreClient := db.GetFirestoreClient()
	if firestoreClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firestore client is nil after initialization.")
	}
	defer firestoreClient.Close()
	zapLogger.Info("Firebase Admin SDK initialized.")

	// Repositories.
	profileRepo := db.NewFirestoreProfileRepository(firestoreClient)
	likesRepo := db.NewFirestoreLikesRepository(firestoreClient)

	// Like-set cache; optional. Without Redis the like engine reads the
	// store directly on every check.
	var likesCache cache.LikesCache
	if appConfig.RedisAddr != "" {
		redisCache, err := cache.NewRedisLikesCache(initCtx, cache.NewRedisLikesCacheConfig{
			Addr:     appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to Redis", zap.Error(err))
		}
		defer redisCache.Close()
		likesCache = redisCache
		zapLogger.Info("Redis like-set cache enabled", zap.String("addr", appConfig.RedisAddr))
	} else {
		zapLogger.Warn("REDIS_ADDR not configured; like-set cache disabled.")
	}

	// Services.
	profileService := core.NewProfileService(profileRepo, zapLogger)
	directoryService := core.NewDirectoryService(profileRepo, zapLogger)
	likeService := core.NewLikeService(likesRepo, profileRepo, likesCache, zapLogger)
	uploadService := core.NewUploadService(db.GetStorageBucket(), zapLogger)
	if db.GetStorageBucket() == nil {
		zapLogger.Warn("STORAGE_BUCKET not configured; image uploads disabled.")
	}
	zapLogger.Info("Core services initialized.")

	if releaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured.")
	}

	api.SetupRoutes(
		router,
		appConfig,
		zapLogger,
		profileService,
		directoryService,
		likeService,
		uploadService,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
