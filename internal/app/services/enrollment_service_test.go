package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
	"github.com/rcardoso/schedula/internal/pkg/keylock"
)

type enrollmentKey struct {
	sectionID int64
	studentID int64
}

type fakeEnrollmentStore struct {
	mu          sync.Mutex
	enrollments map[enrollmentKey]bool
	students    map[int64]models.Student
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		enrollments: make(map[enrollmentKey]bool),
		students:    make(map[int64]models.Student),
	}
}

func (f *fakeEnrollmentStore) Exists(_ context.Context, sectionID, studentID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enrollments[enrollmentKey{sectionID, studentID}], nil
}

func (f *fakeEnrollmentStore) CountBySection(_ context.Context, sectionID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for key := range f.enrollments {
		if key.sectionID == sectionID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEnrollmentStore) Insert(_ context.Context, sectionID, studentID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := enrollmentKey{sectionID, studentID}
	if f.enrollments[key] {
		return errors.New("duplicate enrollment")
	}
	f.enrollments[key] = true
	return nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, sectionID, studentID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := enrollmentKey{sectionID, studentID}
	if !f.enrollments[key] {
		return false, nil
	}
	delete(f.enrollments, key)
	return true, nil
}

func (f *fakeEnrollmentStore) Roster(_ context.Context, sectionID int64) ([]models.RosterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var entries []models.RosterEntry
	for key := range f.enrollments {
		if key.sectionID != sectionID {
			continue
		}
		student, ok := f.students[key.studentID]
		if !ok || !student.Status {
			continue
		}
		entries = append(entries, models.RosterEntry{
			ID:               student.ID,
			Name:             student.Name,
			EnrollmentNumber: student.EnrollmentNumber,
		})
	}
	return entries, nil
}

func (f *fakeEnrollmentStore) AvailableStudents(_ context.Context, sectionID int64) ([]models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Student
	for _, student := range f.students {
		if !student.Status {
			continue
		}
		if f.enrollments[enrollmentKey{sectionID, student.ID}] {
			continue
		}
		out = append(out, student)
	}
	return out, nil
}

type fakeRoomReader map[int64]*models.Room

func (f fakeRoomReader) GetByID(_ context.Context, id int64) (*models.Room, error) {
	room, ok := f[id]
	if !ok {
		return nil, nil
	}
	copied := *room
	return &copied, nil
}

type fakeStudentReader struct {
	store *fakeEnrollmentStore
}

func (f fakeStudentReader) GetActiveByID(_ context.Context, id int64) (*models.Student, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	student, ok := f.store.students[id]
	if !ok || !student.Status {
		return nil, nil
	}
	return &student, nil
}

// enrollmentFixture wires an enrollment service around one active section in
// a room with the given capacity.
func enrollmentFixture(t *testing.T, capacity, studentCount int) (*EnrollmentService, int64) {
	t.Helper()

	sections := newFakeSectionStore()
	sectionID := sections.add(models.Section{
		Name:      "Algorithms A",
		SubjectID: 1, InstructorID: 1, RoomID: 1,
		Weekday:   models.Monday,
		StartTime: "08:00", EndTime: "10:00",
		Status: true,
	})

	rooms := fakeRoomReader{1: {ID: 1, Name: "Lab 101", Location: "Building A", Capacity: capacity, Status: true}}

	store := newFakeEnrollmentStore()
	for i := 1; i <= studentCount; i++ {
		id := int64(i)
		store.students[id] = models.Student{
			ID:               id,
			Name:             fmt.Sprintf("Student %d", i),
			EnrollmentNumber: fmt.Sprintf("2024%03d", i),
			Status:           true,
		}
	}

	svc := NewEnrollmentService(store, sections, rooms, fakeStudentReader{store}, keylock.New())
	return svc, sectionID
}

func TestEnrollStudentReportsOccupancy(t *testing.T) {
	svc, sectionID := enrollmentFixture(t, 30, 2)

	occupancy, err := svc.EnrollStudent(context.Background(), sectionID, 1)
	if err != nil {
		t.Fatalf("EnrollStudent: %v", err)
	}
	if occupancy.Occupied != 1 || occupancy.Total != 30 || occupancy.Available != 29 {
		t.Errorf("unexpected occupancy: %+v", occupancy)
	}

	occupancy, err = svc.EnrollStudent(context.Background(), sectionID, 2)
	if err != nil {
		t.Fatalf("EnrollStudent: %v", err)
	}
	if occupancy.Occupied != 2 || occupancy.Available != 28 {
		t.Errorf("unexpected occupancy after second enroll: %+v", occupancy)
	}
}

func TestEnrollStudentRejectsWhenFull(t *testing.T) {
	svc, sectionID := enrollmentFixture(t, 2, 3)

	for studentID := int64(1); studentID <= 2; studentID++ {
		if _, err := svc.EnrollStudent(context.Background(), sectionID, studentID); err != nil {
			t.Fatalf("EnrollStudent %d: %v", studentID, err)
		}
	}

	_, err := svc.EnrollStudent(context.Background(), sectionID, 3)
	if !errors.Is(err, apperrors.ErrSectionFull) {
		t.Fatalf("expected section full, got %v", err)
	}
	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) || customErr.Message != "Section is full. Maximum capacity: 2 students" {
		t.Errorf("expected capacity message, got %v", err)
	}
}

func TestEnrollStudentRejectsDuplicate(t *testing.T) {
	svc, sectionID := enrollmentFixture(t, 30, 1)

	if _, err := svc.EnrollStudent(context.Background(), sectionID, 1); err != nil {
		t.Fatalf("EnrollStudent: %v", err)
	}
	_, err := svc.EnrollStudent(context.Background(), sectionID, 1)
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Fatalf("expected already enrolled, got %v", err)
	}
}

func TestEnrollStudentSectionChecks(t *testing.T) {
	svc, sectionID := enrollmentFixture(t, 30, 1)

	if _, err := svc.EnrollStudent(context.Background(), 42, 1); !errors.Is(err, apperrors.ErrSectionNotFound) {
		t.Errorf("unknown section: expected not found, got %v", err)
	}
	if _, err := svc.EnrollStudent(context.Background(), sectionID, 42); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("unknown student: expected not found, got %v", err)
	}
}

func TestEnrollStudentRejectsInactiveSection(t *testing.T) {
	sections := newFakeSectionStore()
	sectionID := sections.add(models.Section{
		Name: "Old Section", SubjectID: 1, InstructorID: 1, RoomID: 1,
		Weekday: models.Monday, StartTime: "08:00", EndTime: "10:00",
		Status: false,
	})
	store := newFakeEnrollmentStore()
	store.students[1] = models.Student{ID: 1, Name: "Student", EnrollmentNumber: "2024001", Status: true}
	rooms := fakeRoomReader{1: {ID: 1, Name: "Lab 101", Capacity: 30, Status: true}}
	svc := NewEnrollmentService(store, sections, rooms, fakeStudentReader{store}, keylock.New())

	_, err := svc.EnrollStudent(context.Background(), sectionID, 1)
	if !errors.Is(err, apperrors.ErrSectionNotFound) {
		t.Fatalf("expected inactive section to read as not found, got %v", err)
	}
}

func TestUnenrollStudent(t *testing.T) {
	svc, sectionID := enrollmentFixture(t, 30, 1)

	if _, err := svc.EnrollStudent(context.Background(), sectionID, 1); err != nil {
		t.Fatalf("EnrollStudent: %v", err)
	}
	if err := svc.UnenrollStudent(context.Background(), sectionID, 1); err != nil {
		t.Fatalf("UnenrollStudent: %v", err)
	}

	// A second removal reports the missing enrollment instead of succeeding.
	err := svc.UnenrollStudent(context.Background(), sectionID, 1)
	if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected enrollment not found, got %v", err)
	}
}

func TestUnenrollStudentFromSoftDeletedSection(t *testing.T) {
	sections := newFakeSectionStore()
	sectionID := sections.add(models.Section{
		Name: "Algorithms A", SubjectID: 1, InstructorID: 1, RoomID: 1,
		Weekday: models.Monday, StartTime: "08:00", EndTime: "10:00",
		Status: true,
	})
	store := newFakeEnrollmentStore()
	store.students[1] = models.Student{ID: 1, Name: "Student", EnrollmentNumber: "2024001", Status: true}
	rooms := fakeRoomReader{1: {ID: 1, Name: "Lab 101", Capacity: 30, Status: true}}
	svc := NewEnrollmentService(store, sections, rooms, fakeStudentReader{store}, keylock.New())

	if _, err := svc.EnrollStudent(context.Background(), sectionID, 1); err != nil {
		t.Fatalf("EnrollStudent: %v", err)
	}
	if _, err := sections.UpdateStatus(context.Background(), sectionID, false); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	// The join row is still removable once the section is inactive.
	if err := svc.UnenrollStudent(context.Background(), sectionID, 1); err != nil {
		t.Fatalf("UnenrollStudent after soft delete: %v", err)
	}
	if err := svc.UnenrollStudent(context.Background(), sectionID, 1); !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected enrollment not found on second removal, got %v", err)
	}
}

func TestRosterReadableOnSoftDeletedSection(t *testing.T) {
	sections := newFakeSectionStore()
	sectionID := sections.add(models.Section{
		Name: "Algorithms A", SubjectID: 1, InstructorID: 1, RoomID: 1,
		Weekday: models.Monday, StartTime: "08:00", EndTime: "10:00",
		Status: true,
	})
	store := newFakeEnrollmentStore()
	store.students[1] = models.Student{ID: 1, Name: "Student", EnrollmentNumber: "2024001", Status: true}
	rooms := fakeRoomReader{1: {ID: 1, Name: "Lab 101", Capacity: 30, Status: true}}
	svc := NewEnrollmentService(store, sections, rooms, fakeStudentReader{store}, keylock.New())

	if _, err := svc.EnrollStudent(context.Background(), sectionID, 1); err != nil {
		t.Fatalf("EnrollStudent: %v", err)
	}
	if _, err := sections.UpdateStatus(context.Background(), sectionID, false); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	students, _, _, err := svc.Roster(context.Background(), sectionID)
	if err != nil {
		t.Fatalf("Roster after soft delete: %v", err)
	}
	if len(students) != 1 {
		t.Errorf("expected 1 student on roster, got %d", len(students))
	}
	if _, err := svc.AvailableStudents(context.Background(), sectionID); err != nil {
		t.Errorf("AvailableStudents after soft delete: %v", err)
	}
}

func TestRosterListsEnrolledStudents(t *testing.T) {
	svc, sectionID := enrollmentFixture(t, 30, 3)

	for studentID := int64(1); studentID <= 2; studentID++ {
		if _, err := svc.EnrollStudent(context.Background(), sectionID, studentID); err != nil {
			t.Fatalf("EnrollStudent %d: %v", studentID, err)
		}
	}

	students, detail, room, err := svc.Roster(context.Background(), sectionID)
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	if len(students) != 2 {
		t.Errorf("expected 2 students on roster, got %d", len(students))
	}
	if detail.Name != "Algorithms A" {
		t.Errorf("unexpected section name %q", detail.Name)
	}
	if room.Capacity != 30 {
		t.Errorf("unexpected room capacity %d", room.Capacity)
	}
}

func TestAvailableStudentsExcludesEnrolled(t *testing.T) {
	svc, sectionID := enrollmentFixture(t, 30, 3)

	if _, err := svc.EnrollStudent(context.Background(), sectionID, 1); err != nil {
		t.Fatalf("EnrollStudent: %v", err)
	}

	available, err := svc.AvailableStudents(context.Background(), sectionID)
	if err != nil {
		t.Fatalf("AvailableStudents: %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("expected 2 available students, got %d", len(available))
	}
	for _, student := range available {
		if student.ID == 1 {
			t.Error("enrolled student listed as available")
		}
	}
}

func TestConcurrentEnrollsRespectCapacity(t *testing.T) {
	const capacity = 3
	const students = 10
	svc, sectionID := enrollmentFixture(t, capacity, students)

	errs := make(chan error, students)
	var wg sync.WaitGroup
	for i := 1; i <= students; i++ {
		wg.Add(1)
		go func(studentID int64) {
			defer wg.Done()
			_, err := svc.EnrollStudent(context.Background(), sectionID, studentID)
			errs <- err
		}(int64(i))
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, apperrors.ErrSectionFull) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != capacity {
		t.Errorf("expected exactly %d enrollments, got %d", capacity, succeeded)
	}
}
