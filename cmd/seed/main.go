package main

import (
	"context"
	"log"
	"time"

	"cinelog/internal/config"
	"cinelog/internal/database"
	"cinelog/internal/domain"
	"cinelog/internal/pkg/identity"
	"cinelog/internal/repository"

	"github.com/joho/godotenv"
)

// Seeds a local database with demo accounts and watch state. Only meant for
// development against the local identity provider.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	provider, err := identity.NewLocalProvider(db, cfg.AuthSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal("local identity provider init failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM visits")
	db.Exec("DELETE FROM watched")
	db.Exec("DELETE FROM watchlist_items")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM identity_users")

	userRepo := repository.NewUserRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	watchedRepo := repository.NewWatchedRepository(db)
	visitRepo := repository.NewVisitRepository(db)

	log.Println("Creating users...")
	accounts := []struct {
		email string
		name  string
	}{
		{"ada@cinelog.dev", "Ada"},
		{"grace@cinelog.dev", "Grace"},
		{"linus@cinelog.dev", "Linus"},
	}

	users := make([]*domain.User, 0, len(accounts))
	for _, a := range accounts {
		uid, err := provider.CreateUser(ctx, a.email, "demo123", a.name)
		if err != nil {
			log.Fatalf("identity create failed for %s: %v", a.email, err)
		}
		u := &domain.User{IdentityUID: uid, Email: a.email, DisplayName: a.name}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("user insert failed for %s: %v", a.email, err)
		}
		users = append(users, u)
	}

	log.Println("Creating watch state...")
	// a few well-known TMDB ids
	fightClub, matrix, inception, parasite := 550, 603, 27205, 496243

	ada, grace := users[0], users[1]

	for _, id := range []int{matrix, inception} {
		if err := watchlistRepo.Add(ctx, ada.ID, id); err != nil {
			log.Fatal(err)
		}
	}

	rating := 5
	review := "Still holds up."
	if err := watchedRepo.Create(ctx, &domain.Watched{
		UserID:      ada.ID,
		MovieID:     fightClub,
		IsFavorited: true,
		Feedback:    domain.Feedback{Rating: &rating, Content: &review},
	}); err != nil {
		log.Fatal(err)
	}

	if err := watchedRepo.Create(ctx, &domain.Watched{
		UserID:  grace.ID,
		MovieID: parasite,
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating visits...")
	for i := 0; i < 3; i++ {
		if err := visitRepo.Create(ctx, &domain.Visit{
			VisitorID:     grace.ID,
			VisitedUserID: ada.ID,
			VisitedAt:     time.Now().Add(-time.Duration(i) * time.Hour),
		}); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed completed!")
	log.Println("Demo accounts (password demo123):")
	for _, a := range accounts {
		log.Printf("  %s", a.email)
	}
}
