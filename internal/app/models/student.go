package models

import "time"

// Student represents a student eligible for section enrollment
type Student struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	EnrollmentNumber string    `json:"enrollment_number"`
	Status           bool      `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
