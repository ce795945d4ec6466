package models

import "time"

// Instructor represents a teaching staff member
type Instructor struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	Degree     string    `json:"degree"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"` // Nullable
	Status     bool      `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
