package services

import (
	"context"
	"strings"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/app/repositories"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
	"github.com/rcardoso/schedula/internal/pkg/dberrors"
)

// StudentStore is the storage contract the student service depends on
type StudentStore interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Student, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	UpdateStatus(ctx context.Context, id int64, status bool) (*models.Student, error)
}

// StudentService handles student registry operations
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{students: students}
}

func validateStudent(student *models.Student) []string {
	var messages []string

	if strings.TrimSpace(student.Name) == "" {
		messages = append(messages, "Name is required")
	}
	if strings.TrimSpace(student.EnrollmentNumber) == "" {
		messages = append(messages, "Enrollment number is required")
	}

	return messages
}

func mapStudentUniqueness(err error) error {
	if dberrors.IsUniqueViolation(err) {
		return apperrors.NewDuplicateKeyError(apperrors.ErrEnrollmentNumberExists, "Enrollment number already registered")
	}
	return err
}

// ListStudents retrieves a page of students
func (s *StudentService) ListStudents(ctx context.Context, params repositories.ListParams) ([]models.Student, int64, error) {
	return s.students.List(ctx, params)
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// CreateStudent validates and inserts a new student
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if messages := validateStudent(student); len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	student.Name = strings.TrimSpace(student.Name)
	student.EnrollmentNumber = strings.TrimSpace(student.EnrollmentNumber)

	if err := s.students.Create(ctx, student); err != nil {
		return mapStudentUniqueness(err)
	}
	return nil
}

// UpdateStudent validates and persists a full-field update. The stored
// status is never modified on this path.
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	existing, err := s.students.GetByID(ctx, student.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrStudentNotFound
	}

	if messages := validateStudent(student); len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	student.Name = strings.TrimSpace(student.Name)
	student.EnrollmentNumber = strings.TrimSpace(student.EnrollmentNumber)

	if err := s.students.Update(ctx, student); err != nil {
		return mapStudentUniqueness(err)
	}
	return nil
}

// UpdateStudentStatus toggles the active flag without re-validation
func (s *StudentService) UpdateStudentStatus(ctx context.Context, id int64, status bool) (*models.Student, error) {
	student, err := s.students.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// SoftDeleteStudent marks the student inactive
func (s *StudentService) SoftDeleteStudent(ctx context.Context, id int64) error {
	_, err := s.UpdateStudentStatus(ctx, id, false)
	return err
}
