package dto

import "github.com/rcardoso/schedula/internal/app/models"

// CreateInstructorRequest is the payload for creating an instructor
type CreateInstructorRequest struct {
	Name       string  `json:"name"`
	NationalID string  `json:"national_id"`
	Degree     string  `json:"degree"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
}

// UpdateInstructorRequest is the payload for updating an instructor. A body
// carrying only the status field is a status toggle.
type UpdateInstructorRequest struct {
	Status     *bool   `json:"status"`
	Name       *string `json:"name"`
	NationalID *string `json:"national_id"`
	Degree     *string `json:"degree"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
}

// IsStatusToggle reports whether the request only toggles the active flag
func (r UpdateInstructorRequest) IsStatusToggle() bool {
	return r.Status != nil && r.Name == nil && r.NationalID == nil &&
		r.Degree == nil && r.Email == nil && r.Phone == nil
}

// InstructorListResponse is the paginated list body for instructors
type InstructorListResponse struct {
	Instructors []models.Instructor `json:"instructors"`
	Pagination  PaginationInfo      `json:"pagination"`
}
