package models

import "time"

// User is a staff account. It exists only to authenticate dashboard
// requests and to stamp UserID on review records.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"user_id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
