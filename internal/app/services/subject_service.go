package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/app/repositories"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
	"github.com/rcardoso/schedula/internal/pkg/dberrors"
	"github.com/rcardoso/schedula/internal/pkg/validation"
)

// SubjectStore is the storage contract the subject service depends on
type SubjectStore interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Subject, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	CodeInUse(ctx context.Context, code string, excludeID int64) (bool, error)
	Create(ctx context.Context, subject *models.Subject) error
	Update(ctx context.Context, subject *models.Subject) error
	UpdateStatus(ctx context.Context, id int64, status bool) (*models.Subject, error)
}

// SubjectService handles subject catalog operations
type SubjectService struct {
	subjects SubjectStore
}

// NewSubjectService creates a new subject service
func NewSubjectService(subjects SubjectStore) *SubjectService {
	return &SubjectService{subjects: subjects}
}

// validateSubject accumulates every validation failure rather than stopping
// at the first. excludeID skips the subject's own row in the code check.
func (s *SubjectService) validateSubject(ctx context.Context, subject *models.Subject, excludeID int64) ([]string, error) {
	var messages []string

	if len(strings.TrimSpace(subject.Name)) < validation.SubjectNameMinLength {
		messages = append(messages, fmt.Sprintf("Name must have at least %d characters", validation.SubjectNameMinLength))
	}

	if strings.TrimSpace(subject.Code) == "" {
		messages = append(messages, "Code is required")
	} else {
		inUse, err := s.subjects.CodeInUse(ctx, strings.TrimSpace(subject.Code), excludeID)
		if err != nil {
			return nil, err
		}
		if inUse {
			messages = append(messages, "Code already registered")
		}
	}

	if subject.Period == "" {
		messages = append(messages, "Period is required")
	} else if !validation.IsValidPeriod(subject.Period) {
		messages = append(messages, "Period must be between 1º and 10º")
	}

	return messages, nil
}

// mapSubjectUniqueness converts a code-constraint violation into the domain
// error. The proactive CodeInUse check only sees active subjects, so a code
// held by a soft-deleted subject still trips the constraint here.
func mapSubjectUniqueness(err error) error {
	if dberrors.IsDuplicateConstraintError(err, "uq_subjects_code") {
		return apperrors.NewDuplicateKeyError(apperrors.ErrSubjectCodeExists, "Code already registered")
	}
	return err
}

// ListSubjects retrieves a page of subjects
func (s *SubjectService) ListSubjects(ctx context.Context, params repositories.ListParams) ([]models.Subject, int64, error) {
	return s.subjects.List(ctx, params)
}

// GetSubjectByID retrieves a subject by ID
func (s *SubjectService) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

// CreateSubject validates and inserts a new subject
func (s *SubjectService) CreateSubject(ctx context.Context, subject *models.Subject) error {
	messages, err := s.validateSubject(ctx, subject, 0)
	if err != nil {
		return fmt.Errorf("error validating subject: %w", err)
	}
	if len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	subject.Name = strings.TrimSpace(subject.Name)
	subject.Code = strings.TrimSpace(subject.Code)
	subject.Period = strings.TrimSpace(subject.Period)

	if err := s.subjects.Create(ctx, subject); err != nil {
		return mapSubjectUniqueness(err)
	}
	return nil
}

// UpdateSubject validates and persists a full-field update. The stored
// status is never modified on this path.
func (s *SubjectService) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	existing, err := s.subjects.GetByID(ctx, subject.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrSubjectNotFound
	}

	messages, err := s.validateSubject(ctx, subject, subject.ID)
	if err != nil {
		return fmt.Errorf("error validating subject: %w", err)
	}
	if len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	subject.Name = strings.TrimSpace(subject.Name)
	subject.Code = strings.TrimSpace(subject.Code)
	subject.Period = strings.TrimSpace(subject.Period)

	if err := s.subjects.Update(ctx, subject); err != nil {
		return mapSubjectUniqueness(err)
	}
	return nil
}

// UpdateSubjectStatus toggles the active flag without re-validation
func (s *SubjectService) UpdateSubjectStatus(ctx context.Context, id int64, status bool) (*models.Subject, error) {
	subject, err := s.subjects.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

// SoftDeleteSubject marks the subject inactive
func (s *SubjectService) SoftDeleteSubject(ctx context.Context, id int64) error {
	_, err := s.UpdateSubjectStatus(ctx, id, false)
	return err
}
