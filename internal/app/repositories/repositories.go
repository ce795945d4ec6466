package repositories

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	SubjectRepository    *SubjectRepository
	InstructorRepository *InstructorRepository
	RoomRepository       *RoomRepository
	StudentRepository    *StudentRepository
	SectionRepository    *SectionRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SubjectRepository:    NewSubjectRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		RoomRepository:       NewRoomRepository(db),
		StudentRepository:    NewStudentRepository(db),
		SectionRepository:    NewSectionRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}

// ListParams holds the common filtering, sorting and paging inputs of every
// list query. Status filters on the soft-delete flag.
type ListParams struct {
	Page           int
	Limit          int
	Search         string
	Status         bool
	OrderBy        string
	OrderDirection string
}

// orderClause maps a request-supplied sort field through the repository's
// allow-list and normalizes the direction. Values outside the allow-list fall
// back to the default column; they are never interpolated into SQL.
func orderClause(allowed map[string]string, defaultColumn, orderBy, orderDirection string) string {
	column := defaultColumn
	if mapped, ok := allowed[orderBy]; ok {
		column = mapped
	}

	direction := "ASC"
	if strings.EqualFold(orderDirection, "desc") {
		direction = "DESC"
	}

	return column + " " + direction
}
