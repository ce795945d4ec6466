package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/pkg/helpers"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentSortColumns = map[string]string{
	"name":              "name",
	"enrollment_number": "enrollment_number",
}

// List retrieves students with pagination, search and status filtering
func (r *StudentRepository) List(ctx context.Context, params ListParams) ([]models.Student, int64, error) {
	where := squirrel.And{squirrel.Eq{"status": params.Status}}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"enrollment_number": pattern},
		})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("students").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build student count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	querySQL, queryArgs, err := r.sb.
		Select("id", "name", "enrollment_number", "status", "created_at", "updated_at").
		From("students").
		Where(where).
		OrderBy(orderClause(studentSortColumns, "name", params.OrderBy, params.OrderDirection)).
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.EnrollmentNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetByID retrieves a student by ID regardless of status, or nil when absent
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, enrollment_number, status, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var s models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.EnrollmentNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &s, nil
}

// GetActiveByID retrieves a student only when it exists and is active
func (r *StudentRepository) GetActiveByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil || !student.Status {
		return nil, nil
	}
	return student, nil
}

// Create inserts a new student and fills in the generated fields. The unique
// enrollment number is enforced by the database.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, enrollment_number, status)
		VALUES ($1, $2, true)
		RETURNING id, status, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query, student.Name, student.EnrollmentNumber).
		Scan(&student.ID, &student.Status, &student.CreatedAt, &student.UpdatedAt)
}

// Update persists a full-field update, carrying forward the stored status
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, enrollment_number = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING status, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query, student.Name, student.EnrollmentNumber, student.ID).
		Scan(&student.Status, &student.CreatedAt, &student.UpdatedAt)
}

// UpdateStatus toggles the soft-delete flag only
func (r *StudentRepository) UpdateStatus(ctx context.Context, id int64, status bool) (*models.Student, error) {
	query := `
		UPDATE students
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, name, enrollment_number, status, created_at, updated_at
	`

	var s models.Student
	err := r.db.QueryRow(ctx, query, status, id).Scan(
		&s.ID, &s.Name, &s.EnrollmentNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error updating student status: %w", err)
	}

	return &s, nil
}
