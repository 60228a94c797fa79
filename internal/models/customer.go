package models

import "time"

// Customer represents the person who submitted one or more complaints.
// A customer is created implicitly on the first complaint from a new
// email address, or explicitly through the customer endpoint. Records
// are immutable once created.
type Customer struct {
	// ID is the unique identifier of the customer.
	ID uint `gorm:"primaryKey" json:"customer_id"`
	// FullName is the customer's full name as given on the form.
	FullName string `gorm:"type:text;not null" json:"fullname"`
	// Email identifies the customer; one customer per email.
	Email string `gorm:"type:text;uniqueIndex;not null" json:"email"`
	// CreatedAt is the timestamp when the customer was first seen.
	CreatedAt time.Time `json:"created_at"`
}
