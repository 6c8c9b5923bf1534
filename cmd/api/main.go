package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cinelog/internal/config"
	"cinelog/internal/database"
	"cinelog/internal/middleware"
	"cinelog/internal/modules/auth"
	"cinelog/internal/modules/catalog"
	"cinelog/internal/modules/library"
	"cinelog/internal/modules/profile"
	"cinelog/internal/pkg/identity"
	"cinelog/internal/pkg/keepalive"
	"cinelog/internal/pkg/omdb"
	"cinelog/internal/pkg/tmdb"
	"cinelog/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var provider identity.Provider
	if cfg.IdentityCredentialsFile != "" {
		provider, err = identity.NewFirebaseProvider(ctx, cfg.IdentityCredentialsFile)
		if err != nil {
			log.Fatalf("identity provider init failed: %v", err)
		}
	} else {
		log.Println("IDENTITY_CREDENTIALS_FILE is empty, using the local identity provider")
		provider, err = identity.NewLocalProvider(db, cfg.AuthSecret, cfg.TokenTTL)
		if err != nil {
			log.Fatalf("local identity provider init failed: %v", err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	watchedRepo := repository.NewWatchedRepository(db)
	visitRepo := repository.NewVisitRepository(db)

	tmdbClient := tmdb.NewClient(cfg.TMDBAPIKey, cfg.TMDBReadToken, cfg.TMDBBaseURL)
	omdbClient := omdb.NewClient(cfg.OMDBAPIKey, cfg.OMDBBaseURL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, provider))
	libraryHandler := library.NewHandler(library.NewService(userRepo, watchlistRepo, watchedRepo))
	profileHandler := profile.NewHandler(profile.NewService(userRepo, watchlistRepo, watchedRepo, visitRepo, tmdbClient))
	catalogHandler := catalog.NewHandler(catalog.NewService(tmdbClient, omdbClient, watchedRepo))

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Authenticate(provider))
		{
			user := protected.Group("/user")
			libraryHandler.RegisterRoutes(user)
			profileHandler.RegisterRoutes(user)

			movies := protected.Group("/movie")
			genres := protected.Group("/genre")
			catalogHandler.RegisterRoutes(movies, genres)
		}
	}

	if cfg.SelfURL != "" {
		go keepalive.Run(ctx, cfg.SelfURL, cfg.PingInterval)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
