package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/findapro/findapro-api/internal/config"
	"github.com/findapro/findapro-api/internal/domain/auth"
	"github.com/findapro/findapro-api/internal/domain/category"
	"github.com/findapro/findapro-api/internal/domain/favorite"
	"github.com/findapro/findapro-api/internal/domain/matching"
	"github.com/findapro/findapro-api/internal/domain/notification"
	"github.com/findapro/findapro-api/internal/domain/provider"
	"github.com/findapro/findapro-api/internal/domain/quote"
	"github.com/findapro/findapro-api/internal/domain/review"
	uploadDomain "github.com/findapro/findapro-api/internal/domain/upload"
	"github.com/findapro/findapro-api/internal/middleware"
	"github.com/findapro/findapro-api/internal/pkg/database"
	pkgimaging "github.com/findapro/findapro-api/internal/pkg/imaging"
	"github.com/findapro/findapro-api/internal/pkg/jwt"
	"github.com/findapro/findapro-api/internal/pkg/logger"
	"github.com/findapro/findapro-api/internal/pkg/response"
	"github.com/findapro/findapro-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting FindAPro API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redisClient)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	var mediaStore storage.Storage
	if cfg.UseS3() {
		mediaStore, err = storage.NewS3Storage(storage.Config{
			S3Endpoint:  cfg.S3Endpoint,
			S3Region:    cfg.S3Region,
			S3AccessKey: cfg.S3AccessKey,
			S3SecretKey: cfg.S3SecretKey,
			S3Bucket:    cfg.S3Bucket,
			PublicURL:   cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize object storage")
		}
	} else {
		mediaStore, err = storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize local storage")
		}
		log.Warn().Str("dir", cfg.UploadDir).Msg("Object storage not configured, using local uploads")
	}

	// ---------- Repositories ----------
	userRepo := auth.NewRepository(db)
	refreshTokens := auth.NewRefreshTokenStore(redisClient)
	categoryRepo := category.NewRepository(db)
	providerRepo := provider.NewRepository(db)
	hoursRepo := provider.NewHoursRepository(db)
	areaRepo := provider.NewServiceAreaRepository(db)
	reviewRepo := review.NewRepository(db)
	quoteRepo := quote.NewRepository(db)
	favoriteRepo := favorite.NewRepository(db)
	galleryRepo := uploadDomain.NewImageRepository(db)

	// ---------- Realtime ----------
	hub := notification.NewHub(redisClient)
	go hub.Run()
	defer hub.Stop()

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService, refreshTokens)
	providerService := provider.NewService(providerRepo, hoursRepo, areaRepo)
	matchingService := matching.NewService(providerRepo)
	reviewService := review.NewService(reviewRepo, providerRepo)
	quoteService := quote.NewService(quoteRepo, providerRepo, hub)

	maxUpload := cfg.MaxUploadSizeMB * 1024 * 1024
	uploadService := uploadDomain.NewService(
		providerRepo,
		galleryRepo,
		mediaStore,
		pkgimaging.NewProcessor(pkgimaging.DefaultConfig()),
		maxUpload,
	)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	categoryHandler := category.NewHandler(categoryRepo)
	providerHandler := provider.NewHandler(providerService)
	matchingHandler := matching.NewHandler(matchingService)
	reviewHandler := review.NewHandler(reviewService)
	quoteHandler := quote.NewHandler(quoteService)
	favoriteHandler := favorite.NewHandler(favoriteRepo)
	uploadHandler := uploadDomain.NewHandler(uploadService, maxUpload)
	notificationHandler := notification.NewHandler(hub, cfg.AllowedOrigins)

	authMiddleware := middleware.Auth(jwtService)
	providerOnly := middleware.RequireProvider()

	// ---------- Router ----------
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		response.OK(w, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/categories", categoryHandler.Routes())
		r.Mount("/match", matchingHandler.Routes())
		r.Mount("/providers", providerHandler.Routes(authMiddleware, providerOnly))
		r.Mount("/providers/{id}/reviews", reviewHandler.Routes(authMiddleware))
		r.Mount("/quotes", quoteHandler.Routes(authMiddleware, providerOnly))
		r.Mount("/favorites", favoriteHandler.Routes(authMiddleware))
		r.Mount("/uploads", uploadHandler.Routes(authMiddleware, providerOnly))
		r.Mount("/notifications", notificationHandler.Routes(authMiddleware))
	})

	// Local uploads are served straight from disk in development
	if !cfg.UseS3() {
		fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.UploadDir)))
		r.Get("/media/*", func(w http.ResponseWriter, req *http.Request) {
			fileServer.ServeHTTP(w, req)
		})
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
