package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/app/repositories"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
	"github.com/rcardoso/schedula/internal/pkg/keylock"
)

type fakeSectionStore struct {
	mu       sync.Mutex
	sections map[int64]*models.Section
	nextID   int64
}

func newFakeSectionStore() *fakeSectionStore {
	return &fakeSectionStore{sections: make(map[int64]*models.Section)}
}

func (f *fakeSectionStore) add(s models.Section) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s.ID = f.nextID
	f.sections[s.ID] = &s
	return s.ID
}

func (f *fakeSectionStore) List(_ context.Context, _ repositories.ListParams) ([]models.Section, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Section, 0, len(f.sections))
	for _, s := range f.sections {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSectionStore) GetByID(_ context.Context, id int64) (*models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sections[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSectionStore) GetDetailByID(ctx context.Context, id int64) (*models.SectionDetail, error) {
	s, err := f.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	return &models.SectionDetail{Section: *s}, nil
}

func (f *fakeSectionStore) ActiveByRoomOnWeekday(_ context.Context, roomID int64, weekday models.Weekday, excludeID int64) ([]models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Section
	for _, s := range f.sections {
		if s.Status && s.RoomID == roomID && s.Weekday == weekday && s.ID != excludeID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSectionStore) ActiveByInstructorOnWeekday(_ context.Context, instructorID int64, weekday models.Weekday, excludeID int64) ([]models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Section
	for _, s := range f.sections {
		if s.Status && s.InstructorID == instructorID && s.Weekday == weekday && s.ID != excludeID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSectionStore) Create(_ context.Context, section *models.Section) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	section.ID = f.nextID
	section.Status = true
	copied := *section
	f.sections[section.ID] = &copied
	return nil
}

func (f *fakeSectionStore) Update(_ context.Context, section *models.Section, status bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.sections[section.ID]
	if !ok {
		return errors.New("section not found")
	}
	section.Status = status
	copied := *section
	copied.CreatedAt = existing.CreatedAt
	f.sections[section.ID] = &copied
	return nil
}

func (f *fakeSectionStore) UpdateStatus(_ context.Context, id int64, status bool) (*models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sections[id]
	if !ok {
		return nil, nil
	}
	s.Status = status
	copied := *s
	return &copied, nil
}

type fakeActiveChecker map[int64]bool

func (f fakeActiveChecker) ExistsActive(_ context.Context, id int64) (bool, error) {
	return f[id], nil
}

func newSectionService(store *fakeSectionStore) *SectionService {
	active := fakeActiveChecker{1: true, 2: true}
	return NewSectionService(store, active, active, active, keylock.New())
}

func validSection() models.Section {
	return models.Section{
		Name:         "Algorithms A",
		SubjectID:    1,
		InstructorID: 1,
		RoomID:       1,
		Weekday:      models.Monday,
		StartTime:    "08:00",
		EndTime:      "10:00",
	}
}

func TestCreateSectionValid(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	section := validSection()
	if err := svc.CreateSection(context.Background(), &section); err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	if section.ID == 0 {
		t.Error("expected section to receive an id")
	}
	if !section.Status {
		t.Error("expected new section to be active")
	}
}

func TestCreateSectionAccumulatesValidationMessages(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	section := models.Section{}
	err := svc.CreateSection(context.Background(), &section)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}

	messages := apperrors.ValidationMessages(err)
	want := []string{
		"Section name is required",
		"Subject is required",
		"Instructor is required",
		"Room is required",
		"Weekday is required",
		"Start and end times are required",
	}
	if len(messages) != len(want) {
		t.Fatalf("expected %d messages, got %d: %v", len(want), len(messages), messages)
	}
	for i, msg := range want {
		if messages[i] != msg {
			t.Errorf("message %d: got %q, want %q", i, messages[i], msg)
		}
	}
}

func TestCreateSectionRejectsInactiveReferences(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	section := validSection()
	section.SubjectID = 99
	section.InstructorID = 99
	section.RoomID = 99

	err := svc.CreateSection(context.Background(), &section)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}

	messages := apperrors.ValidationMessages(err)
	want := []string{
		"Subject not found or inactive",
		"Instructor not found or inactive",
		"Room not found or inactive",
	}
	if len(messages) != len(want) {
		t.Fatalf("expected %d messages, got %v", len(want), messages)
	}
	for i, msg := range want {
		if messages[i] != msg {
			t.Errorf("message %d: got %q, want %q", i, messages[i], msg)
		}
	}
}

func TestCreateSectionTimeValidation(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		end     string
		message string
	}{
		{"inverted", "10:00", "08:00", "Start time must be before end time"},
		{"equal", "08:00", "08:00", "Start time must be before end time"},
		{"garbage start", "late", "10:00", "Invalid start time format"},
		{"garbage end", "08:00", "early", "Invalid end time format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newSectionService(newFakeSectionStore())
			section := validSection()
			section.StartTime = tc.start
			section.EndTime = tc.end

			err := svc.CreateSection(context.Background(), &section)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation failure, got %v", err)
			}
			messages := apperrors.ValidationMessages(err)
			found := false
			for _, m := range messages {
				if m == tc.message {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %q among %v", tc.message, messages)
			}
		})
	}
}

func TestCreateSectionNormalizesSecondsInTimes(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	section := validSection()
	section.StartTime = "08:00:00"
	section.EndTime = "09:30:00"

	if err := svc.CreateSection(context.Background(), &section); err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	if section.StartTime != "08:00" || section.EndTime != "09:30" {
		t.Errorf("expected normalized times, got %s-%s", section.StartTime, section.EndTime)
	}
}

func TestCreateSectionRoomConflict(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	first := validSection()
	if err := svc.CreateSection(context.Background(), &first); err != nil {
		t.Fatalf("first CreateSection: %v", err)
	}

	second := validSection()
	second.Name = "Algorithms B"
	second.InstructorID = 2
	second.StartTime = "09:00"
	second.EndTime = "11:00"

	err := svc.CreateSection(context.Background(), &second)
	if !errors.Is(err, apperrors.ErrScheduleConflict) {
		t.Fatalf("expected schedule conflict, got %v", err)
	}
	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) || customErr.Message != "Room is already occupied at this time" {
		t.Errorf("expected room conflict message, got %v", err)
	}
}

func TestCreateSectionInstructorConflict(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	first := validSection()
	if err := svc.CreateSection(context.Background(), &first); err != nil {
		t.Fatalf("first CreateSection: %v", err)
	}

	second := validSection()
	second.Name = "Algorithms B"
	second.RoomID = 2
	second.StartTime = "09:00"
	second.EndTime = "11:00"

	err := svc.CreateSection(context.Background(), &second)
	if !errors.Is(err, apperrors.ErrScheduleConflict) {
		t.Fatalf("expected schedule conflict, got %v", err)
	}
	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) || customErr.Message != "Instructor already teaches at this time" {
		t.Errorf("expected instructor conflict message, got %v", err)
	}
}

func TestCreateSectionRoomConflictReportedFirst(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	first := validSection()
	if err := svc.CreateSection(context.Background(), &first); err != nil {
		t.Fatalf("first CreateSection: %v", err)
	}

	// Same room and same instructor both clash; the room message wins.
	second := validSection()
	second.Name = "Algorithms B"
	second.StartTime = "09:00"
	second.EndTime = "11:00"

	err := svc.CreateSection(context.Background(), &second)
	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) || customErr.Message != "Room is already occupied at this time" {
		t.Errorf("expected room conflict to be reported first, got %v", err)
	}
}

func TestCreateSectionAdjacentTimesDoNotConflict(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	first := validSection()
	if err := svc.CreateSection(context.Background(), &first); err != nil {
		t.Fatalf("first CreateSection: %v", err)
	}

	// Back to back in the same room: [08:00,10:00) then [10:00,12:00).
	second := validSection()
	second.Name = "Algorithms B"
	second.StartTime = "10:00"
	second.EndTime = "12:00"

	if err := svc.CreateSection(context.Background(), &second); err != nil {
		t.Fatalf("adjacent section should not conflict: %v", err)
	}
}

func TestCreateSectionDifferentWeekdayDoesNotConflict(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	first := validSection()
	if err := svc.CreateSection(context.Background(), &first); err != nil {
		t.Fatalf("first CreateSection: %v", err)
	}

	second := validSection()
	second.Name = "Algorithms B"
	second.Weekday = models.Tuesday

	if err := svc.CreateSection(context.Background(), &second); err != nil {
		t.Fatalf("different weekday should not conflict: %v", err)
	}
}

func TestInactiveSectionIgnoredInConflictCheck(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	first := validSection()
	if err := svc.CreateSection(context.Background(), &first); err != nil {
		t.Fatalf("first CreateSection: %v", err)
	}
	if err := svc.SoftDeleteSection(context.Background(), first.ID); err != nil {
		t.Fatalf("SoftDeleteSection: %v", err)
	}

	second := validSection()
	second.Name = "Algorithms B"
	if err := svc.CreateSection(context.Background(), &second); err != nil {
		t.Fatalf("inactive section should not block the slot: %v", err)
	}
}

func TestUpdateSectionExcludesItselfFromConflictCheck(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	section := validSection()
	if err := svc.CreateSection(context.Background(), &section); err != nil {
		t.Fatalf("CreateSection: %v", err)
	}

	// Re-saving the same slot must not collide with the section's own row.
	update := validSection()
	update.ID = section.ID
	update.Name = "Algorithms A (renamed)"
	if err := svc.UpdateSection(context.Background(), &update); err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}
}

func TestUpdateSectionPreservesStoredStatus(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	section := validSection()
	if err := svc.CreateSection(context.Background(), &section); err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	if err := svc.SoftDeleteSection(context.Background(), section.ID); err != nil {
		t.Fatalf("SoftDeleteSection: %v", err)
	}

	update := validSection()
	update.ID = section.ID
	update.Name = "Algorithms A (renamed)"
	if err := svc.UpdateSection(context.Background(), &update); err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}

	stored, err := store.GetByID(context.Background(), section.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Status {
		t.Error("full update must not reactivate an inactive section")
	}
	if stored.Name != "Algorithms A (renamed)" {
		t.Errorf("expected updated name, got %q", stored.Name)
	}
}

func TestUpdateSectionStatusPreservesOtherFields(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	section := validSection()
	if err := svc.CreateSection(context.Background(), &section); err != nil {
		t.Fatalf("CreateSection: %v", err)
	}

	toggled, err := svc.UpdateSectionStatus(context.Background(), section.ID, false)
	if err != nil {
		t.Fatalf("UpdateSectionStatus: %v", err)
	}
	if toggled.Status {
		t.Error("expected section to be inactive")
	}
	if toggled.Name != section.Name || toggled.StartTime != section.StartTime || toggled.RoomID != section.RoomID {
		t.Error("status toggle must not change other fields")
	}
}

func TestUpdateSectionNotFound(t *testing.T) {
	svc := newSectionService(newFakeSectionStore())

	update := validSection()
	update.ID = 42
	err := svc.UpdateSection(context.Background(), &update)
	if !errors.Is(err, apperrors.ErrSectionNotFound) {
		t.Fatalf("expected section not found, got %v", err)
	}
}

func TestGetSectionByIDNotFound(t *testing.T) {
	svc := newSectionService(newFakeSectionStore())
	_, err := svc.GetSectionByID(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrSectionNotFound) {
		t.Fatalf("expected section not found, got %v", err)
	}
}

func TestConcurrentCreatesCannotShareSlot(t *testing.T) {
	store := newFakeSectionStore()
	svc := newSectionService(store)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			section := validSection()
			errs <- svc.CreateSection(context.Background(), &section)
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, apperrors.ErrScheduleConflict) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("expected exactly one create to win the slot, got %d", succeeded)
	}
}
