package dto

import "github.com/rcardoso/schedula/internal/app/models"

// EnrollStudentRequest is the payload for adding a student to a section
type EnrollStudentRequest struct {
	StudentID int64 `json:"student_id" binding:"required,gt=0"`
}

// EnrollmentResponse reports the section occupancy after a successful enroll
type EnrollmentResponse struct {
	Message   string           `json:"message"`
	Occupancy models.Occupancy `json:"occupancy"`
}

// RosterSectionInfo is the section summary attached to a roster listing
type RosterSectionInfo struct {
	SectionName string `json:"section_name"`
	RoomName    string `json:"room_name"`
	Capacity    int    `json:"capacity"`
}

// RosterResponse lists the students enrolled in a section
type RosterResponse struct {
	Students  []models.RosterEntry `json:"students"`
	Section   RosterSectionInfo    `json:"section"`
	Occupancy models.Occupancy     `json:"occupancy"`
}

// AvailableStudentsResponse lists active students not yet on a section roster
type AvailableStudentsResponse struct {
	Students []models.Student `json:"students"`
}
