package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcardoso/schedula/internal/app/models"
)

// EnrollmentRepository handles the section-student join table
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Exists reports whether the student is already enrolled in the section
func (r *EnrollmentRepository) Exists(ctx context.Context, sectionID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM section_students WHERE section_id = $1 AND student_id = $2)`,
		sectionID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}

// CountBySection counts the enrollments of a section
func (r *EnrollmentRepository) CountBySection(ctx context.Context, sectionID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM section_students WHERE section_id = $1`, sectionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// Insert adds the join row for a (section, student) pair. The composite
// unique key rejects duplicates at the database as a last line of defense.
func (r *EnrollmentRepository) Insert(ctx context.Context, sectionID, studentID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO section_students (section_id, student_id) VALUES ($1, $2)`,
		sectionID, studentID)
	if err != nil {
		return fmt.Errorf("error inserting enrollment: %w", err)
	}
	return nil
}

// Delete removes the join row for a (section, student) pair, reporting
// whether a row actually matched.
func (r *EnrollmentRepository) Delete(ctx context.Context, sectionID, studentID int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM section_students WHERE section_id = $1 AND student_id = $2`,
		sectionID, studentID)
	if err != nil {
		return false, fmt.Errorf("error deleting enrollment: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Roster retrieves the active students enrolled in a section, name-ordered
func (r *EnrollmentRepository) Roster(ctx context.Context, sectionID int64) ([]models.RosterEntry, error) {
	query := `
		SELECT st.id, st.name, st.enrollment_number, ss.created_at AS enrolled_at
		FROM students st
		JOIN section_students ss ON st.id = ss.student_id
		WHERE ss.section_id = $1 AND st.status = true
		ORDER BY st.name
	`

	rows, err := r.db.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("error listing section roster: %w", err)
	}
	defer rows.Close()

	entries := make([]models.RosterEntry, 0)
	for rows.Next() {
		var e models.RosterEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.EnrollmentNumber, &e.EnrolledAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// AvailableStudents retrieves the active students not yet enrolled in the
// section, name-ordered.
func (r *EnrollmentRepository) AvailableStudents(ctx context.Context, sectionID int64) ([]models.Student, error) {
	query := `
		SELECT st.id, st.name, st.enrollment_number, st.status, st.created_at, st.updated_at
		FROM students st
		WHERE st.status = true
		AND st.id NOT IN (
			SELECT student_id FROM section_students WHERE section_id = $1
		)
		ORDER BY st.name
	`

	rows, err := r.db.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("error listing available students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.EnrollmentNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
