package dto

import "github.com/rcardoso/schedula/internal/app/models"

// CreateSectionRequest is the payload for creating a section
type CreateSectionRequest struct {
	Name         string `json:"name"`
	SubjectID    int64  `json:"subject_id"`
	InstructorID int64  `json:"instructor_id"`
	RoomID       int64  `json:"room_id"`
	Weekday      string `json:"weekday"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// ToSection converts the request into a section candidate
func (r CreateSectionRequest) ToSection() models.Section {
	return models.Section{
		Name:         r.Name,
		SubjectID:    r.SubjectID,
		InstructorID: r.InstructorID,
		RoomID:       r.RoomID,
		Weekday:      models.Weekday(r.Weekday),
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
	}
}

// UpdateSectionRequest is the payload for updating a section. The two update
// modes are mutually exclusive: a body carrying only the status field toggles
// the active flag without re-validation, anything else is a full-field update.
type UpdateSectionRequest struct {
	Status       *bool   `json:"status"`
	Name         *string `json:"name"`
	SubjectID    *int64  `json:"subject_id"`
	InstructorID *int64  `json:"instructor_id"`
	RoomID       *int64  `json:"room_id"`
	Weekday      *string `json:"weekday"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

// IsStatusToggle reports whether the request only toggles the active flag
func (r UpdateSectionRequest) IsStatusToggle() bool {
	return r.Status != nil && r.Name == nil && r.SubjectID == nil &&
		r.InstructorID == nil && r.RoomID == nil && r.Weekday == nil &&
		r.StartTime == nil && r.EndTime == nil
}

// ToSection converts a full-field update into a section candidate. Absent
// fields become zero values and are reported by the section validator.
func (r UpdateSectionRequest) ToSection() models.Section {
	var s models.Section
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.SubjectID != nil {
		s.SubjectID = *r.SubjectID
	}
	if r.InstructorID != nil {
		s.InstructorID = *r.InstructorID
	}
	if r.RoomID != nil {
		s.RoomID = *r.RoomID
	}
	if r.Weekday != nil {
		s.Weekday = models.Weekday(*r.Weekday)
	}
	if r.StartTime != nil {
		s.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		s.EndTime = *r.EndTime
	}
	return s
}

// SectionListResponse is the paginated list body for sections
type SectionListResponse struct {
	Sections   []models.Section `json:"sections"`
	Pagination PaginationInfo   `json:"pagination"`
}
