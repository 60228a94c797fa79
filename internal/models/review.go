package models

import "time"

// Review is a staff annotation tied to one complaint and one staff member.
// At most one review exists per (complaint, user) pair; the composite
// unique index backs up the find-before-create check in the engine.
type Review struct {
	ID uint `gorm:"primaryKey" json:"review_id"`
	// ComplaintID references the annotated complaint.
	ComplaintID uint `gorm:"not null;uniqueIndex:idx_review_complaint_user" json:"complaint_id"`
	// UserID is the staff member who owns this review.
	UserID uint `gorm:"not null;uniqueIndex:idx_review_complaint_user" json:"user_id"`
	// DueDate is the follow-up deadline. Defaults to the update time
	// when a review is created without an explicit date.
	DueDate time.Time `gorm:"not null" json:"due_date"`
	// Notes holds free-form staff notes. NULL means no notes were ever
	// recorded; an empty string means the notes were cleared.
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
