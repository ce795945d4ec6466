package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/app/repositories"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
	"github.com/rcardoso/schedula/internal/pkg/helpers"
	"github.com/rcardoso/schedula/internal/pkg/keylock"
)

// SectionStore is the storage contract the section service depends on
type SectionStore interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Section, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Section, error)
	GetDetailByID(ctx context.Context, id int64) (*models.SectionDetail, error)
	ActiveByRoomOnWeekday(ctx context.Context, roomID int64, weekday models.Weekday, excludeID int64) ([]models.Section, error)
	ActiveByInstructorOnWeekday(ctx context.Context, instructorID int64, weekday models.Weekday, excludeID int64) ([]models.Section, error)
	Create(ctx context.Context, section *models.Section) error
	Update(ctx context.Context, section *models.Section, status bool) error
	UpdateStatus(ctx context.Context, id int64, status bool) (*models.Section, error)
}

// ActiveChecker reports whether an active entity with the given ID exists.
// Satisfied by the subject, instructor and room repositories.
type ActiveChecker interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}

// SectionService orchestrates section lifecycle, validation and schedule
// conflict detection
type SectionService struct {
	sections    SectionStore
	subjects    ActiveChecker
	instructors ActiveChecker
	rooms       ActiveChecker

	// locks serializes every conflict-check-then-write sequence touching the
	// same room or instructor on the same weekday, so two concurrent creates
	// cannot both pass the overlap check.
	locks *keylock.KeyLock
}

// NewSectionService creates a new section service
func NewSectionService(sections SectionStore, subjects, instructors, rooms ActiveChecker, locks *keylock.KeyLock) *SectionService {
	return &SectionService{
		sections:    sections,
		subjects:    subjects,
		instructors: instructors,
		rooms:       rooms,
		locks:       locks,
	}
}

func roomDayKey(roomID int64, weekday models.Weekday) string {
	return fmt.Sprintf("room:%d:%s", roomID, weekday)
}

func instructorDayKey(instructorID int64, weekday models.Weekday) string {
	return fmt.Sprintf("instructor:%d:%s", instructorID, weekday)
}

// validateSection runs every check and accumulates the failures; it never
// stops at the first error. Referenced entities must exist and be active.
// On success the candidate's name and times are left normalized in place.
func (s *SectionService) validateSection(ctx context.Context, section *models.Section) ([]string, error) {
	var messages []string

	if strings.TrimSpace(section.Name) == "" {
		messages = append(messages, "Section name is required")
	}
	if section.SubjectID == 0 {
		messages = append(messages, "Subject is required")
	}
	if section.InstructorID == 0 {
		messages = append(messages, "Instructor is required")
	}
	if section.RoomID == 0 {
		messages = append(messages, "Room is required")
	}

	if section.Weekday == "" {
		messages = append(messages, "Weekday is required")
	} else if !section.Weekday.IsValid() {
		messages = append(messages, "Invalid weekday")
	}

	if section.StartTime == "" || section.EndTime == "" {
		messages = append(messages, "Start and end times are required")
	} else {
		start, startErr := helpers.NormalizeTimeOfDay(section.StartTime)
		if startErr != nil {
			messages = append(messages, "Invalid start time format")
		} else {
			section.StartTime = start
		}

		end, endErr := helpers.NormalizeTimeOfDay(section.EndTime)
		if endErr != nil {
			messages = append(messages, "Invalid end time format")
		} else {
			section.EndTime = end
		}

		if startErr == nil && endErr == nil && section.StartTime >= section.EndTime {
			messages = append(messages, "Start time must be before end time")
		}
	}

	if section.SubjectID != 0 {
		exists, err := s.subjects.ExistsActive(ctx, section.SubjectID)
		if err != nil {
			return nil, fmt.Errorf("error checking subject: %w", err)
		}
		if !exists {
			messages = append(messages, "Subject not found or inactive")
		}
	}

	if section.InstructorID != 0 {
		exists, err := s.instructors.ExistsActive(ctx, section.InstructorID)
		if err != nil {
			return nil, fmt.Errorf("error checking instructor: %w", err)
		}
		if !exists {
			messages = append(messages, "Instructor not found or inactive")
		}
	}

	if section.RoomID != 0 {
		exists, err := s.rooms.ExistsActive(ctx, section.RoomID)
		if err != nil {
			return nil, fmt.Errorf("error checking room: %w", err)
		}
		if !exists {
			messages = append(messages, "Room not found or inactive")
		}
	}

	return messages, nil
}

// rangesOverlap reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Normalized "HH:MM" strings compare
// chronologically, so plain string comparison is enough.
func rangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// findScheduleConflict checks the candidate against the active sections
// sharing its room or instructor on the same weekday, excluding excludeID.
// The room is checked first; the first conflict found wins and the
// instructor check is skipped. Returns the empty string when free.
func (s *SectionService) findScheduleConflict(ctx context.Context, section *models.Section, excludeID int64) (string, error) {
	roomSections, err := s.sections.ActiveByRoomOnWeekday(ctx, section.RoomID, section.Weekday, excludeID)
	if err != nil {
		return "", fmt.Errorf("error checking room conflicts: %w", err)
	}
	for _, other := range roomSections {
		if rangesOverlap(section.StartTime, section.EndTime, other.StartTime, other.EndTime) {
			return "Room is already occupied at this time", nil
		}
	}

	instructorSections, err := s.sections.ActiveByInstructorOnWeekday(ctx, section.InstructorID, section.Weekday, excludeID)
	if err != nil {
		return "", fmt.Errorf("error checking instructor conflicts: %w", err)
	}
	for _, other := range instructorSections {
		if rangesOverlap(section.StartTime, section.EndTime, other.StartTime, other.EndTime) {
			return "Instructor already teaches at this time", nil
		}
	}

	return "", nil
}

// ListSections retrieves a page of sections
func (s *SectionService) ListSections(ctx context.Context, params repositories.ListParams) ([]models.Section, int64, error) {
	return s.sections.List(ctx, params)
}

// GetSectionByID retrieves a section enriched with display names
func (s *SectionService) GetSectionByID(ctx context.Context, id int64) (*models.SectionDetail, error) {
	detail, err := s.sections.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperrors.ErrSectionNotFound
	}
	return detail, nil
}

// CreateSection validates the candidate, checks schedule conflicts and
// inserts it as active. The conflict check and insert run under the room-day
// and instructor-day locks.
func (s *SectionService) CreateSection(ctx context.Context, section *models.Section) error {
	messages, err := s.validateSection(ctx, section)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}
	section.Name = strings.TrimSpace(section.Name)

	keys := []string{roomDayKey(section.RoomID, section.Weekday), instructorDayKey(section.InstructorID, section.Weekday)}
	s.locks.LockAll(keys...)
	defer s.locks.UnlockAll(keys...)

	conflict, err := s.findScheduleConflict(ctx, section, 0)
	if err != nil {
		return err
	}
	if conflict != "" {
		return apperrors.NewConflictError(conflict)
	}

	return s.sections.Create(ctx, section)
}

// UpdateSection validates and persists a full-field update, excluding the
// section's own id from the conflict check and carrying forward the stored
// active flag. A full-field update never changes the status.
func (s *SectionService) UpdateSection(ctx context.Context, section *models.Section) error {
	existing, err := s.sections.GetByID(ctx, section.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrSectionNotFound
	}

	messages, err := s.validateSection(ctx, section)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}
	section.Name = strings.TrimSpace(section.Name)

	// The update may move the section to another room or instructor; lock the
	// previous slots too so vacating and claiming are serialized together.
	keys := []string{
		roomDayKey(section.RoomID, section.Weekday),
		instructorDayKey(section.InstructorID, section.Weekday),
		roomDayKey(existing.RoomID, existing.Weekday),
		instructorDayKey(existing.InstructorID, existing.Weekday),
	}
	s.locks.LockAll(keys...)
	defer s.locks.UnlockAll(keys...)

	conflict, err := s.findScheduleConflict(ctx, section, section.ID)
	if err != nil {
		return err
	}
	if conflict != "" {
		return apperrors.NewConflictError(conflict)
	}

	return s.sections.Update(ctx, section, existing.Status)
}

// UpdateSectionStatus toggles the active flag without re-running validation
// or conflict detection. Reactivation intentionally skips the conflict check,
// matching the status-toggle contract.
func (s *SectionService) UpdateSectionStatus(ctx context.Context, id int64, status bool) (*models.Section, error) {
	section, err := s.sections.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, apperrors.ErrSectionNotFound
	}
	return section, nil
}

// SoftDeleteSection marks the section inactive; it stays addressable by id
// and drops out of conflict checks.
func (s *SectionService) SoftDeleteSection(ctx context.Context, id int64) error {
	_, err := s.UpdateSectionStatus(ctx, id, false)
	return err
}
