package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"videotube/internal/auth"
	"videotube/internal/config"
	"videotube/internal/handler"
	"videotube/internal/infrastructure/database"
	"videotube/internal/logger"
	"videotube/internal/media"
	"videotube/internal/metrics"
	"videotube/internal/middleware"
	"videotube/internal/repository"
	"videotube/internal/service"
	"videotube/internal/validator"
)

func main() {
	// Local development convenience; a missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Media storage
	mediaStore, err := media.NewS3Store(context.Background(), media.S3Config{
		Endpoint:      cfg.MediaEndpoint,
		Region:        cfg.MediaRegion,
		Bucket:        cfg.MediaBucket,
		AccessKey:     cfg.MediaAccessKey,
		SecretKey:     cfg.MediaSecretKey,
		PublicBaseURL: cfg.MediaPublicBaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to create media store",
			slog.String("error", err.Error()))
	}

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	videoRepo := repository.NewPostgresVideoRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	likeRepo := repository.NewPostgresLikeRepository(pool)
	subscriptionRepo := repository.NewPostgresSubscriptionRepository(pool)
	tweetRepo := repository.NewPostgresTweetRepository(pool)
	playlistRepo := repository.NewPostgresPlaylistRepository(pool)

	// Initialize validator and token manager
	v := validator.NewValidator()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Initialize services
	userService := service.NewUserService(userRepo, tokens, v, mediaStore)
	videoService := service.NewVideoService(videoRepo, userRepo, v, mediaStore)
	commentService := service.NewCommentService(commentRepo)
	likeService := service.NewLikeService(likeRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	tweetService := service.NewTweetService(tweetRepo)
	playlistService := service.NewPlaylistService(playlistRepo, v)
	dashboardService := service.NewDashboardService(videoRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	tweetHandler := handler.NewTweetHandler(tweetService)
	playlistHandler := handler.NewPlaylistHandler(playlistService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/refresh", userHandler.Refresh)
			users.POST("/logout", requireAuth, userHandler.Logout)
			users.GET("/me", requireAuth, userHandler.Me)
			users.PATCH("/me", requireAuth, userHandler.UpdateAccount)
			users.POST("/change-password", requireAuth, userHandler.ChangePassword)
			users.PATCH("/me/avatar", requireAuth, userHandler.UpdateAvatar)
			users.PATCH("/me/cover", requireAuth, userHandler.UpdateCoverImage)
			users.GET("/me/history", requireAuth, userHandler.WatchHistory)
			users.GET("/channel/:username", optionalAuth, userHandler.Channel)
		}

		videos := v1.Group("/videos")
		{
			videos.GET("", videoHandler.List)
			videos.POST("", requireAuth, videoHandler.Publish)
			videos.GET("/:videoID", optionalAuth, videoHandler.Get)
			videos.DELETE("/:videoID", requireAuth, videoHandler.Delete)
			videos.PATCH("/:videoID/thumbnail", requireAuth, videoHandler.UpdateThumbnail)
			videos.PATCH("/:videoID/publish", requireAuth, videoHandler.SetPublished)
			videos.GET("/:videoID/comments", commentHandler.List)
			videos.POST("/:videoID/comments", requireAuth, commentHandler.Add)
		}

		comments := v1.Group("/comments", requireAuth)
		{
			comments.PATCH("/:id", commentHandler.Update)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		likes := v1.Group("/likes", requireAuth)
		{
			likes.POST("/:target/:id", likeHandler.Toggle)
			likes.GET("/videos", likeHandler.LikedVideos)
		}

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.POST("/:channelID", requireAuth, subscriptionHandler.Toggle)
			subscriptions.GET("/:channelID/subscribers", subscriptionHandler.Subscribers)
		}

		tweets := v1.Group("/tweets")
		{
			tweets.POST("", requireAuth, tweetHandler.Create)
			tweets.GET("/user/:userID", tweetHandler.ListByUser)
			tweets.PATCH("/:id", requireAuth, tweetHandler.Update)
			tweets.DELETE("/:id", requireAuth, tweetHandler.Delete)
		}

		playlists := v1.Group("/playlists")
		{
			playlists.POST("", requireAuth, playlistHandler.Create)
			playlists.GET("/user/:userID", playlistHandler.ListByUser)
			playlists.GET("/:id", playlistHandler.Get)
			playlists.POST("/:id/videos/:videoID", requireAuth, playlistHandler.AddVideo)
			playlists.DELETE("/:id/videos/:videoID", requireAuth, playlistHandler.RemoveVideo)
		}

		dashboard := v1.Group("/dashboard", requireAuth)
		{
			dashboard.GET("/stats", dashboardHandler.Stats)
			dashboard.GET("/videos", dashboardHandler.Videos)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
