package domain

import "time"

// User is the local half of an account. The identity provider owns the
// credential; we own everything else.
type User struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	IdentityUID string    `json:"-" gorm:"column:identity_uid;uniqueIndex;size:128;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	DisplayName string    `json:"displayName" gorm:"size:100"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// WatchlistItem is one movie id on a user's watchlist. Insertion order is
// the watchlist order.
type WatchlistItem struct {
	ID        int64     `json:"-" gorm:"primaryKey"`
	UserID    int64     `json:"-" gorm:"uniqueIndex:idx_watchlist_user_movie;not null"`
	MovieID   int       `json:"movieId" gorm:"uniqueIndex:idx_watchlist_user_movie;not null"`
	CreatedAt time.Time `json:"-"`
}

func (WatchlistItem) TableName() string { return "watchlist_items" }
