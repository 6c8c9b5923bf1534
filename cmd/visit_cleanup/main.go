package main

import (
	"log"
	"os"
	"time"

	"cinelog/internal/database"
	"cinelog/internal/domain"
)

// Prunes old profile-visit rows. The profile page only ever shows the most
// recent visits, so anything older than the retention window is dead weight.
const retention = 90 * 24 * time.Hour

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cutoff := time.Now().Add(-retention)
	res := db.Where("visited_at < ?", cutoff).Delete(&domain.Visit{})
	if res.Error != nil {
		log.Fatalf("visit cleanup failed: %v", res.Error)
	}

	log.Printf("visit cleanup completed: removed=%d cutoff=%s", res.RowsAffected, cutoff.Format(time.RFC3339))
}
