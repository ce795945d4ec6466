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

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var subjectSortColumns = map[string]string{
	"name":   "name",
	"code":   "code",
	"period": "period",
}

// List retrieves subjects with pagination, search and status filtering
func (r *SubjectRepository) List(ctx context.Context, params ListParams) ([]models.Subject, int64, error) {
	where := squirrel.And{squirrel.Eq{"status": params.Status}}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
			squirrel.ILike{"period": pattern},
		})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("subjects").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build subject count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting subjects: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	querySQL, queryArgs, err := r.sb.
		Select("id", "name", "code", "period", "status", "created_at", "updated_at").
		From("subjects").
		Where(where).
		OrderBy(orderClause(subjectSortColumns, "name", params.OrderBy, params.OrderDirection)).
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build subject list query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	subjects := make([]models.Subject, 0)
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Period, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return subjects, total, nil
}

// GetByID retrieves a subject by ID regardless of status, or nil when absent
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, name, code, period, status, created_at, updated_at
		FROM subjects
		WHERE id = $1
	`

	var s models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Code, &s.Period, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &s, nil
}

// ExistsActive reports whether an active subject with the given ID exists
func (r *SubjectRepository) ExistsActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1 AND status = true)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject existence: %w", err)
	}
	return exists, nil
}

// CodeInUse reports whether an active subject other than excludeID already
// uses the given code. Pass excludeID 0 for creates.
func (r *SubjectRepository) CodeInUse(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subjects WHERE code = $1 AND id != $2 AND status = true)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject code: %w", err)
	}
	return exists, nil
}

// Create inserts a new subject and fills in the generated fields
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, period, status)
		VALUES ($1, $2, $3, true)
		RETURNING id, status, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query, subject.Name, subject.Code, subject.Period).
		Scan(&subject.ID, &subject.Status, &subject.CreatedAt, &subject.UpdatedAt)
}

// Update persists a full-field update, carrying forward the stored status
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, code = $2, period = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING status, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, subject.Name, subject.Code, subject.Period, subject.ID).
		Scan(&subject.Status, &subject.CreatedAt, &subject.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return pgx.ErrNoRows
	}
	return err
}

// UpdateStatus toggles the soft-delete flag only
func (r *SubjectRepository) UpdateStatus(ctx context.Context, id int64, status bool) (*models.Subject, error) {
	query := `
		UPDATE subjects
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, name, code, period, status, created_at, updated_at
	`

	var s models.Subject
	err := r.db.QueryRow(ctx, query, status, id).Scan(
		&s.ID, &s.Name, &s.Code, &s.Period, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error updating subject status: %w", err)
	}

	return &s, nil
}
