package dto

import "github.com/rcardoso/schedula/internal/app/models"

// CreateSubjectRequest is the payload for creating a subject
type CreateSubjectRequest struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Period string `json:"period"`
}

// UpdateSubjectRequest is the payload for updating a subject. A body carrying
// only the status field is a status toggle; anything else is a full update.
type UpdateSubjectRequest struct {
	Status *bool   `json:"status"`
	Name   *string `json:"name"`
	Code   *string `json:"code"`
	Period *string `json:"period"`
}

// IsStatusToggle reports whether the request only toggles the active flag
func (r UpdateSubjectRequest) IsStatusToggle() bool {
	return r.Status != nil && r.Name == nil && r.Code == nil && r.Period == nil
}

// SubjectListResponse is the paginated list body for subjects
type SubjectListResponse struct {
	Subjects   []models.Subject `json:"subjects"`
	Pagination PaginationInfo   `json:"pagination"`
}
