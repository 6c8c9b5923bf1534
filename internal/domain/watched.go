package domain

import "time"

// Feedback is the rating/review pair attached to a Watched record. Rating
// and Content are pointers: nil means the user never set the field, and a
// rating of 0 is stored distinctly from "no rating".
type Feedback struct {
	Rating    *int      `json:"rating" gorm:"column:rating"`
	Content   *string   `json:"content" gorm:"column:content;size:1000"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:feedback_created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:feedback_updated_at"`
}

// Watched records one user's relationship to one movie: the favorite flag
// and optional feedback. At most one record exists per (user, movie) pair;
// unfavoriting or clearing feedback mutates the record, never deletes it.
type Watched struct {
	ID          int64    `json:"id" gorm:"primaryKey"`
	UserID      int64    `json:"-" gorm:"uniqueIndex:idx_watched_user_movie;not null"`
	MovieID     int      `json:"movieId" gorm:"uniqueIndex:idx_watched_user_movie;not null"`
	IsFavorited bool     `json:"isFavorited" gorm:"not null;default:false"`
	Feedback    Feedback `json:"feedback" gorm:"embedded"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Watched) TableName() string { return "watched" }
