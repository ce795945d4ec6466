package services

import (
	"context"
	"strings"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/app/repositories"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
	"github.com/rcardoso/schedula/internal/pkg/dberrors"
	"github.com/rcardoso/schedula/internal/pkg/validation"
)

// InstructorStore is the storage contract the instructor service depends on
type InstructorStore interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Instructor, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	Create(ctx context.Context, instructor *models.Instructor) error
	Update(ctx context.Context, instructor *models.Instructor) error
	UpdateStatus(ctx context.Context, id int64, status bool) (*models.Instructor, error)
}

// InstructorService handles instructor registry operations
type InstructorService struct {
	instructors InstructorStore
}

// NewInstructorService creates a new instructor service
func NewInstructorService(instructors InstructorStore) *InstructorService {
	return &InstructorService{instructors: instructors}
}

func validateInstructor(instructor *models.Instructor) []string {
	var messages []string

	if strings.TrimSpace(instructor.Name) == "" {
		messages = append(messages, "Name is required")
	}
	if strings.TrimSpace(instructor.NationalID) == "" {
		messages = append(messages, "National ID is required")
	}
	if strings.TrimSpace(instructor.Degree) == "" {
		messages = append(messages, "Degree is required")
	}
	if email := strings.TrimSpace(instructor.Email); email == "" {
		messages = append(messages, "Email is required")
	} else if !validation.IsValidEmail(email) {
		messages = append(messages, "Email is invalid")
	}

	return messages
}

// mapInstructorUniqueness converts unique-constraint violations into the
// domain error; uniqueness is enforced reactively at the database.
func mapInstructorUniqueness(err error) error {
	if dberrors.IsUniqueViolation(err) {
		return apperrors.NewDuplicateKeyError(apperrors.ErrInstructorExists, "National ID or email already registered")
	}
	return err
}

// ListInstructors retrieves a page of instructors
func (s *InstructorService) ListInstructors(ctx context.Context, params repositories.ListParams) ([]models.Instructor, int64, error) {
	return s.instructors.List(ctx, params)
}

// GetInstructorByID retrieves an instructor by ID
func (s *InstructorService) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor, err := s.instructors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, apperrors.ErrInstructorNotFound
	}
	return instructor, nil
}

// CreateInstructor validates and inserts a new instructor
func (s *InstructorService) CreateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if messages := validateInstructor(instructor); len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	instructor.Name = strings.TrimSpace(instructor.Name)
	instructor.NationalID = strings.TrimSpace(instructor.NationalID)
	instructor.Email = strings.TrimSpace(instructor.Email)

	if err := s.instructors.Create(ctx, instructor); err != nil {
		return mapInstructorUniqueness(err)
	}
	return nil
}

// UpdateInstructor validates and persists a full-field update. The stored
// status is never modified on this path.
func (s *InstructorService) UpdateInstructor(ctx context.Context, instructor *models.Instructor) error {
	existing, err := s.instructors.GetByID(ctx, instructor.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrInstructorNotFound
	}

	if messages := validateInstructor(instructor); len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	instructor.Name = strings.TrimSpace(instructor.Name)
	instructor.NationalID = strings.TrimSpace(instructor.NationalID)
	instructor.Email = strings.TrimSpace(instructor.Email)

	if err := s.instructors.Update(ctx, instructor); err != nil {
		return mapInstructorUniqueness(err)
	}
	return nil
}

// UpdateInstructorStatus toggles the active flag without re-validation
func (s *InstructorService) UpdateInstructorStatus(ctx context.Context, id int64, status bool) (*models.Instructor, error) {
	instructor, err := s.instructors.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, apperrors.ErrInstructorNotFound
	}
	return instructor, nil
}

// SoftDeleteInstructor marks the instructor inactive
func (s *InstructorService) SoftDeleteInstructor(ctx context.Context, id int64) error {
	_, err := s.UpdateInstructorStatus(ctx, id, false)
	return err
}
