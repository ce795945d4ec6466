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

// SectionRepository handles database operations for sections
type SectionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var sectionSortColumns = map[string]string{
	"name":       "name",
	"weekday":    "weekday",
	"start_time": "start_time",
}

// sectionColumns selects section fields with TIME columns rendered as
// normalized "HH24:MI" strings, so Go-side comparisons stay lexical.
const sectionColumns = `id, name, subject_id, instructor_id, room_id, weekday,
	to_char(start_time, 'HH24:MI') AS start_time,
	to_char(end_time, 'HH24:MI') AS end_time,
	status, created_at, updated_at`

func scanSection(row pgx.Row) (*models.Section, error) {
	var s models.Section
	var weekday string
	err := row.Scan(
		&s.ID, &s.Name, &s.SubjectID, &s.InstructorID, &s.RoomID, &weekday,
		&s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Weekday = models.Weekday(weekday)
	return &s, nil
}

// List retrieves sections with pagination, search and status filtering
func (r *SectionRepository) List(ctx context.Context, params ListParams) ([]models.Section, int64, error) {
	where := squirrel.And{squirrel.Eq{"status": params.Status}}
	if params.Search != "" {
		where = append(where, squirrel.ILike{"name": "%" + params.Search + "%"})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("sections").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build section count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting sections: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	querySQL, queryArgs, err := r.sb.
		Select("id", "name", "subject_id", "instructor_id", "room_id", "weekday",
			"to_char(start_time, 'HH24:MI') AS start_time",
			"to_char(end_time, 'HH24:MI') AS end_time",
			"status", "created_at", "updated_at").
		From("sections").
		Where(where).
		OrderBy(orderClause(sectionSortColumns, "name", params.OrderBy, params.OrderDirection)).
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build section list query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing sections: %w", err)
	}
	defer rows.Close()

	sections := make([]models.Section, 0)
	for rows.Next() {
		var s models.Section
		var weekday string
		if err := rows.Scan(&s.ID, &s.Name, &s.SubjectID, &s.InstructorID, &s.RoomID, &weekday,
			&s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		s.Weekday = models.Weekday(weekday)
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return sections, total, nil
}

// GetByID retrieves a section by ID regardless of status, or nil when absent
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	query := fmt.Sprintf(`SELECT %s FROM sections WHERE id = $1`, sectionColumns)

	section, err := scanSection(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	return section, nil
}

// GetDetailByID retrieves a section enriched with the display names of its
// subject, instructor and room, or nil when absent. LEFT JOINs keep the row
// addressable even when a referenced entity was removed.
func (r *SectionRepository) GetDetailByID(ctx context.Context, id int64) (*models.SectionDetail, error) {
	query := `
		SELECT s.id, s.name, s.subject_id, s.instructor_id, s.room_id, s.weekday,
			to_char(s.start_time, 'HH24:MI') AS start_time,
			to_char(s.end_time, 'HH24:MI') AS end_time,
			s.status, s.created_at, s.updated_at,
			COALESCE(sub.name, '') AS subject_name,
			COALESCE(i.name, '') AS instructor_name,
			COALESCE(rm.name, '') AS room_name
		FROM sections s
		LEFT JOIN subjects sub ON s.subject_id = sub.id
		LEFT JOIN instructors i ON s.instructor_id = i.id
		LEFT JOIN rooms rm ON s.room_id = rm.id
		WHERE s.id = $1
	`

	var d models.SectionDetail
	var weekday string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.SubjectID, &d.InstructorID, &d.RoomID, &weekday,
		&d.StartTime, &d.EndTime, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&d.SubjectName, &d.InstructorName, &d.RoomName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving section detail: %w", err)
	}
	d.Weekday = models.Weekday(weekday)

	return &d, nil
}

// ActiveByRoomOnWeekday retrieves the active sections using the given room on
// the given weekday, excluding excludeID (pass 0 for creates).
func (r *SectionRepository) ActiveByRoomOnWeekday(ctx context.Context, roomID int64, weekday models.Weekday, excludeID int64) ([]models.Section, error) {
	return r.activeOnWeekday(ctx, "room_id", roomID, weekday, excludeID)
}

// ActiveByInstructorOnWeekday retrieves the active sections taught by the
// given instructor on the given weekday, excluding excludeID.
func (r *SectionRepository) ActiveByInstructorOnWeekday(ctx context.Context, instructorID int64, weekday models.Weekday, excludeID int64) ([]models.Section, error) {
	return r.activeOnWeekday(ctx, "instructor_id", instructorID, weekday, excludeID)
}

func (r *SectionRepository) activeOnWeekday(ctx context.Context, column string, id int64, weekday models.Weekday, excludeID int64) ([]models.Section, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sections
		WHERE %s = $1 AND weekday = $2 AND status = true AND id != $3
	`, sectionColumns, column)

	rows, err := r.db.Query(ctx, query, id, string(weekday), excludeID)
	if err != nil {
		return nil, fmt.Errorf("error querying sections by %s: %w", column, err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var s models.Section
		var day string
		if err := rows.Scan(&s.ID, &s.Name, &s.SubjectID, &s.InstructorID, &s.RoomID, &day,
			&s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Weekday = models.Weekday(day)
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// Create inserts a new section as active and fills in the generated fields
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := `
		INSERT INTO sections (name, subject_id, instructor_id, room_id, weekday, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, true)
		RETURNING id, status, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		section.Name, section.SubjectID, section.InstructorID, section.RoomID,
		string(section.Weekday), section.StartTime, section.EndTime,
	).Scan(&section.ID, &section.Status, &section.CreatedAt, &section.UpdatedAt)
}

// Update persists a full-field update. The status argument is the stored
// active flag the caller carries forward; a full-field update never changes it.
func (r *SectionRepository) Update(ctx context.Context, section *models.Section, status bool) error {
	query := `
		UPDATE sections
		SET name = $1, subject_id = $2, instructor_id = $3, room_id = $4,
			weekday = $5, start_time = $6::time, end_time = $7::time,
			status = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING status, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		section.Name, section.SubjectID, section.InstructorID, section.RoomID,
		string(section.Weekday), section.StartTime, section.EndTime,
		status, section.ID,
	).Scan(&section.Status, &section.CreatedAt, &section.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// UpdateStatus toggles the soft-delete flag only
func (r *SectionRepository) UpdateStatus(ctx context.Context, id int64, status bool) (*models.Section, error) {
	query := fmt.Sprintf(`
		UPDATE sections
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING %s
	`, sectionColumns)

	section, err := scanSection(r.db.QueryRow(ctx, query, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error updating section status: %w", err)
	}

	return section, nil
}
