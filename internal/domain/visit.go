package domain

import "time"

// Visit records one user viewing another's profile. Repeated visits
// accumulate; there is no de-duplication window.
type Visit struct {
	ID            int64     `json:"-" gorm:"primaryKey"`
	VisitorID     int64     `json:"-" gorm:"index;not null"`
	VisitedUserID int64     `json:"-" gorm:"index;not null"`
	VisitedAt     time.Time `json:"visitedAt" gorm:"index:,sort:desc"`
}

func (Visit) TableName() string { return "visits" }

// VisitWithVisitor is a visit joined with the visitor's public fields, for
// rendering the owner's visit history.
type VisitWithVisitor struct {
	Visit
	VisitorName     string    `json:"-"`
	VisitorJoinedAt time.Time `json:"-"`
}
