package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/pgxstore"
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/config"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/handler"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/infrastructure/database"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/logger"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/metrics"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/middleware"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/notifier"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/repository"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetDebug(cfg.Debug)

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

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	newsRepo := repository.NewPostgresNewsRepository(pool)
	tagRepo := repository.NewPostgresTagRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Sessions live in Postgres so restarts do not log users out
	sessions := scs.New()
	sessions.Store = pgxstore.New(pool)
	sessions.Lifetime = cfg.SessionLifetime

	// Moderation notifier: Telegram when configured, log otherwise
	var moderationNotifier service.Notifier
	if cfg.NotifierEnabled {
		moderationNotifier, err = notifier.NewTelegramNotifier(cfg.TelegramBotToken, cfg.ModerationChatID)
		if err != nil {
			logger.Fatal("Failed to create telegram notifier",
				slog.String("error", err.Error()))
		}
	} else {
		logger.Warn("Telegram credentials missing, moderation notifications go to the log only")
		moderationNotifier = notifier.NewLogNotifier()
	}

	mailer := notifier.NewLogMailer(cfg.SiteURL)

	// Initialize services
	newsService := service.NewNewsService(
		newsRepo,
		tagRepo,
		userRepo,
		moderationNotifier,
		v,
		cfg.FallbackAuthorID,
		cfg.PageSize,
		cfg.NotifyTimeout,
	)
	commentService := service.NewCommentService(commentRepo, newsRepo, userRepo, v)
	tagService := service.NewTagService(tagRepo, v)
	authService := service.NewAuthService(userRepo, mailer, v, cfg.ResetTokenTTL)

	// Initialize handlers
	newsHandler := handler.NewNewsHandler(newsService)
	commentHandler := handler.NewCommentHandler(commentService)
	tagHandler := handler.NewTagHandler(tagService)
	authHandler := handler.NewAuthHandler(authService, newsService, sessions)
	adminHandler := handler.NewAdminHandler(newsService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(middleware.CurrentUser(sessions, authService))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Debug {
		router.Static("/media", cfg.MediaDir)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		news := v1.Group("/news")
		{
			news.GET("", newsHandler.ListPublished)
			news.GET("/archived", newsHandler.ListArchived)
			news.GET("/search", newsHandler.Search)
			news.GET("/search/archived", newsHandler.SearchArchived)
			news.GET("/tag/:slug", newsHandler.ListByTag)
			news.POST("/propose", newsHandler.Propose)
			news.GET("/:id", newsHandler.Detail)
			news.GET("/:id/comments", commentHandler.List)
			news.POST("/:id/comments", middleware.RequireAuth(), commentHandler.Create)
		}

		comments := v1.Group("/comments", middleware.RequireAuth())
		{
			comments.DELETE("/:id", commentHandler.Delete)
			comments.POST("/:id/like", commentHandler.ToggleLike)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.List)
			tags.GET("/:slug", tagHandler.Get)
		}

		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/password-reset", authHandler.RequestPasswordReset)
			auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
		}

		v1.GET("/profile", middleware.RequireAuth(), authHandler.GetProfile)
		v1.PUT("/profile", middleware.RequireAuth(), authHandler.UpdateProfile)
		v1.GET("/users/:id/news", authHandler.AuthorNews)
		v1.GET("/me/activity", middleware.RequireAuth(), commentHandler.Activity)

		admin := v1.Group("/admin", middleware.RequireModerator())
		{
			admin.GET("/news", adminHandler.ListNews)
			admin.PUT("/news/:id/status", adminHandler.SetStatus)
			admin.POST("/news/status", adminHandler.BulkSetStatus)
			admin.GET("/news/:id/preview", adminHandler.Preview)
			admin.GET("/export/news", adminHandler.ExportNews)
			admin.POST("/tags", tagHandler.Create)
		}
	}

	// Create HTTP server; scs wraps the whole router so sessions are
	// loaded and committed around every request
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      sessions.LoadAndSave(router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("site", cfg.SiteName),
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

	// Shutdown HTTP server first so no new proposals come in
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Drain in-flight moderation notifications
	logger.Info("Waiting for pending notifications")
	newsService.Close()

	logger.Info("Server exited")
}
