package models

import "time"

// Complaint statuses. Every complaint starts as StatusOpen and is only
// moved between these values through the update operation.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

// ValidStatus reports whether s is one of the known complaint statuses.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusClosed
}

// Complaint is a single submission from a customer.
type Complaint struct {
	ID         uint      `gorm:"primaryKey" json:"complaint_id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	Status     string    `gorm:"type:text;not null;default:open" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Reviews    []Review  `gorm:"foreignKey:ComplaintID" json:"reviews"`
}
