// Package services holds the business rules:
// - SubjectService: subject catalog CRUD with code uniqueness
// - InstructorService: instructor registry CRUD
// - RoomService: room registry CRUD with capacity validation
// - StudentService: student registry CRUD
// - SectionService: section lifecycle, validation and schedule conflict detection
// - EnrollmentService: section rosters with capacity enforcement
//
// Each service depends on narrow store interfaces satisfied by the
// repositories package, so the scheduling rules can be exercised without a
// database.
package services

// Services holds all the service instances
type Services struct {
	SubjectService    *SubjectService
	InstructorService *InstructorService
	RoomService       *RoomService
	StudentService    *StudentService
	SectionService    *SectionService
	EnrollmentService *EnrollmentService
}
