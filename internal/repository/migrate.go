package repository

import (
	"cinelog/internal/domain"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table this service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.WatchlistItem{},
		&domain.Watched{},
		&domain.Visit{},
	)
}
