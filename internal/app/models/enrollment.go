package models

import "time"

// Enrollment is the join row binding a student to a section. Rows are
// hard-deleted on unenrollment; the (section, student) pair is unique.
type Enrollment struct {
	ID        int64     `json:"id"`
	SectionID int64     `json:"section_id"`
	StudentID int64     `json:"student_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RosterEntry is a student as listed on a section roster, with the date the
// enrollment was created.
type RosterEntry struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	EnrollmentNumber string    `json:"enrollment_number"`
	EnrolledAt       time.Time `json:"enrolled_at"`
}

// Occupancy reports how full a section is relative to its room capacity.
type Occupancy struct {
	Occupied  int `json:"occupied"`
	Total     int `json:"total"`
	Available int `json:"available"`
}
