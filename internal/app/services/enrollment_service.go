package services

import (
	"context"
	"fmt"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
	"github.com/rcardoso/schedula/internal/pkg/keylock"
)

// EnrollmentStore is the storage contract for the section-student join table
type EnrollmentStore interface {
	Exists(ctx context.Context, sectionID, studentID int64) (bool, error)
	CountBySection(ctx context.Context, sectionID int64) (int, error)
	Insert(ctx context.Context, sectionID, studentID int64) error
	Delete(ctx context.Context, sectionID, studentID int64) (bool, error)
	Roster(ctx context.Context, sectionID int64) ([]models.RosterEntry, error)
	AvailableStudents(ctx context.Context, sectionID int64) ([]models.Student, error)
}

// SectionReader resolves sections for enrollment checks
type SectionReader interface {
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	GetDetailByID(ctx context.Context, id int64) (*models.SectionDetail, error)
}

// RoomReader resolves the room backing a section, for its capacity
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*models.Room, error)
}

// StudentReader resolves active students for enrollment checks
type StudentReader interface {
	GetActiveByID(ctx context.Context, id int64) (*models.Student, error)
}

// EnrollmentService manages section rosters with capacity enforcement
type EnrollmentService struct {
	enrollments EnrollmentStore
	sections    SectionReader
	rooms       RoomReader
	students    StudentReader

	// locks serializes the capacity-check-then-insert sequence per section, so
	// concurrent enrollments cannot overshoot the room capacity.
	locks *keylock.KeyLock
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollments EnrollmentStore, sections SectionReader, rooms RoomReader, students StudentReader, locks *keylock.KeyLock) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		sections:    sections,
		rooms:       rooms,
		students:    students,
		locks:       locks,
	}
}

func sectionKey(sectionID int64) string {
	return fmt.Sprintf("section:%d", sectionID)
}

// resolveSection resolves a section and its room regardless of status.
// Soft-deleted sections stay addressable by id for roster reads and
// unenrollment.
func (s *EnrollmentService) resolveSection(ctx context.Context, sectionID int64) (*models.Section, *models.Room, error) {
	section, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		return nil, nil, err
	}
	if section == nil {
		return nil, nil, apperrors.ErrSectionNotFound
	}

	room, err := s.rooms.GetByID(ctx, section.RoomID)
	if err != nil {
		return nil, nil, err
	}
	if room == nil {
		return nil, nil, apperrors.ErrRoomNotFound
	}

	return section, room, nil
}

// activeSection additionally requires the section to be active; only new
// enrollments are restricted to active sections.
func (s *EnrollmentService) activeSection(ctx context.Context, sectionID int64) (*models.Section, *models.Room, error) {
	section, room, err := s.resolveSection(ctx, sectionID)
	if err != nil {
		return nil, nil, err
	}
	if !section.Status {
		return nil, nil, apperrors.ErrSectionNotFound
	}
	return section, room, nil
}

// EnrollStudent adds a student to a section's roster. The checks run in a
// fixed order: section active, student active, not already enrolled, room has
// capacity. The whole sequence holds the section lock so the occupancy it
// reads stays true through the insert.
func (s *EnrollmentService) EnrollStudent(ctx context.Context, sectionID, studentID int64) (*models.Occupancy, error) {
	key := sectionKey(sectionID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	_, room, err := s.activeSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	student, err := s.students.GetActiveByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	enrolled, err := s.enrollments.Exists(ctx, sectionID, studentID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	count, err := s.enrollments.CountBySection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if count >= room.Capacity {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrSectionFull,
			Message: fmt.Sprintf("Section is full. Maximum capacity: %d students", room.Capacity),
		}
	}

	if err := s.enrollments.Insert(ctx, sectionID, studentID); err != nil {
		return nil, err
	}

	return &models.Occupancy{
		Occupied:  count + 1,
		Total:     room.Capacity,
		Available: room.Capacity - count - 1,
	}, nil
}

// UnenrollStudent removes a student from a section's roster. The section may
// already be soft-deleted; only the matching join row matters.
func (s *EnrollmentService) UnenrollStudent(ctx context.Context, sectionID, studentID int64) error {
	if _, _, err := s.resolveSection(ctx, sectionID); err != nil {
		return err
	}

	matched, err := s.enrollments.Delete(ctx, sectionID, studentID)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

// Roster retrieves a section's enrolled students with its occupancy summary
func (s *EnrollmentService) Roster(ctx context.Context, sectionID int64) ([]models.RosterEntry, *models.SectionDetail, *models.Room, error) {
	detail, err := s.sections.GetDetailByID(ctx, sectionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if detail == nil {
		return nil, nil, nil, apperrors.ErrSectionNotFound
	}

	room, err := s.rooms.GetByID(ctx, detail.RoomID)
	if err != nil {
		return nil, nil, nil, err
	}
	if room == nil {
		return nil, nil, nil, apperrors.ErrRoomNotFound
	}

	entries, err := s.enrollments.Roster(ctx, sectionID)
	if err != nil {
		return nil, nil, nil, err
	}

	return entries, detail, room, nil
}

// AvailableStudents retrieves the active students who could still enroll in
// the section.
func (s *EnrollmentService) AvailableStudents(ctx context.Context, sectionID int64) ([]models.Student, error) {
	if _, _, err := s.resolveSection(ctx, sectionID); err != nil {
		return nil, err
	}
	return s.enrollments.AvailableStudents(ctx, sectionID)
}
