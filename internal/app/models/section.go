package models

import "time"

// Weekday is the fixed set of days a section can be scheduled on. There are no
// Sunday sections.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// Weekdays lists every valid weekday value.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// IsValid reports whether the weekday is one of the fixed six values.
func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}

// Section represents a weekly scheduled offering of a subject, taught by an
// instructor in a room on one weekday and time range. StartTime and EndTime
// hold normalized "HH:MM" values; [StartTime, EndTime) is half-open.
type Section struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	SubjectID    int64     `json:"subject_id"`
	InstructorID int64     `json:"instructor_id"`
	RoomID       int64     `json:"room_id"`
	Weekday      Weekday   `json:"weekday"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       bool      `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SectionDetail is a section enriched with the display names of its
// referenced entities (populated by a joined lookup).
type SectionDetail struct {
	Section
	SubjectName    string `json:"subject_name"`
	InstructorName string `json:"instructor_name"`
	RoomName       string `json:"room_name"`
}
