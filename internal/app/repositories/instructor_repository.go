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

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var instructorSortColumns = map[string]string{
	"name":        "name",
	"national_id": "national_id",
	"email":       "email",
	"degree":      "degree",
}

const instructorColumns = "id, name, national_id, degree, email, phone, status, created_at, updated_at"

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	var i models.Instructor
	err := row.Scan(
		&i.ID, &i.Name, &i.NationalID, &i.Degree, &i.Email, &i.Phone,
		&i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List retrieves instructors with pagination, search and status filtering
func (r *InstructorRepository) List(ctx context.Context, params ListParams) ([]models.Instructor, int64, error) {
	where := squirrel.And{squirrel.Eq{"status": params.Status}}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"national_id": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("instructors").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build instructor count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting instructors: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	querySQL, queryArgs, err := r.sb.
		Select("id", "name", "national_id", "degree", "email", "phone", "status", "created_at", "updated_at").
		From("instructors").
		Where(where).
		OrderBy(orderClause(instructorSortColumns, "name", params.OrderBy, params.OrderDirection)).
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build instructor list query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing instructors: %w", err)
	}
	defer rows.Close()

	instructors := make([]models.Instructor, 0)
	for rows.Next() {
		var i models.Instructor
		if err := rows.Scan(&i.ID, &i.Name, &i.NationalID, &i.Degree, &i.Email, &i.Phone,
			&i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, 0, err
		}
		instructors = append(instructors, i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return instructors, total, nil
}

// GetByID retrieves an instructor by ID regardless of status, or nil when absent
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	query := fmt.Sprintf(`SELECT %s FROM instructors WHERE id = $1`, instructorColumns)

	instructor, err := scanInstructor(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	return instructor, nil
}

// ExistsActive reports whether an active instructor with the given ID exists
func (r *InstructorRepository) ExistsActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM instructors WHERE id = $1 AND status = true)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking instructor existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new instructor and fills in the generated fields.
// Uniqueness of national_id and email is enforced by the database and
// surfaces as a pgconn unique-violation error.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (name, national_id, degree, email, phone, status)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id, status, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		instructor.Name, instructor.NationalID, instructor.Degree, instructor.Email, instructor.Phone,
	).Scan(&instructor.ID, &instructor.Status, &instructor.CreatedAt, &instructor.UpdatedAt)
}

// Update persists a full-field update, carrying forward the stored status
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	query := `
		UPDATE instructors
		SET name = $1, national_id = $2, degree = $3, email = $4, phone = $5,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING status, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		instructor.Name, instructor.NationalID, instructor.Degree, instructor.Email, instructor.Phone,
		instructor.ID,
	).Scan(&instructor.Status, &instructor.CreatedAt, &instructor.UpdatedAt)
}

// UpdateStatus toggles the soft-delete flag only
func (r *InstructorRepository) UpdateStatus(ctx context.Context, id int64, status bool) (*models.Instructor, error) {
	query := fmt.Sprintf(`
		UPDATE instructors
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING %s
	`, instructorColumns)

	instructor, err := scanInstructor(r.db.QueryRow(ctx, query, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error updating instructor status: %w", err)
	}

	return instructor, nil
}
