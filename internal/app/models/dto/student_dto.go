package dto

import "github.com/rcardoso/schedula/internal/app/models"

// CreateStudentRequest is the payload for creating a student
type CreateStudentRequest struct {
	Name             string `json:"name"`
	EnrollmentNumber string `json:"enrollment_number"`
}

// UpdateStudentRequest is the payload for updating a student. A body carrying
// only the status field is a status toggle.
type UpdateStudentRequest struct {
	Status           *bool   `json:"status"`
	Name             *string `json:"name"`
	EnrollmentNumber *string `json:"enrollment_number"`
}

// IsStatusToggle reports whether the request only toggles the active flag
func (r UpdateStudentRequest) IsStatusToggle() bool {
	return r.Status != nil && r.Name == nil && r.EnrollmentNumber == nil
}

// StudentListResponse is the paginated list body for students
type StudentListResponse struct {
	Students   []models.Student `json:"students"`
	Pagination PaginationInfo   `json:"pagination"`
}
