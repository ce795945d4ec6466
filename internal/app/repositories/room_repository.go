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

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var roomSortColumns = map[string]string{
	"name":     "name",
	"location": "location",
	"capacity": "capacity",
}

// List retrieves rooms with pagination, search and status filtering
func (r *RoomRepository) List(ctx context.Context, params ListParams) ([]models.Room, int64, error) {
	where := squirrel.And{squirrel.Eq{"status": params.Status}}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"location": pattern},
		})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("rooms").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build room count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting rooms: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	querySQL, queryArgs, err := r.sb.
		Select("id", "name", "location", "capacity", "status", "created_at", "updated_at").
		From("rooms").
		Where(where).
		OrderBy(orderClause(roomSortColumns, "name", params.OrderBy, params.OrderDirection)).
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build room list query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Location, &room.Capacity,
			&room.Status, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// GetByID retrieves a room by ID regardless of status, or nil when absent
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `
		SELECT id, name, location, capacity, status, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room models.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID, &room.Name, &room.Location, &room.Capacity,
		&room.Status, &room.CreatedAt, &room.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return &room, nil
}

// ExistsActive reports whether an active room with the given ID exists
func (r *RoomRepository) ExistsActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM rooms WHERE id = $1 AND status = true)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking room existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new room and fills in the generated fields. The unique
// room name is enforced by the database.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (name, location, capacity, status)
		VALUES ($1, $2, $3, true)
		RETURNING id, status, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query, room.Name, room.Location, room.Capacity).
		Scan(&room.ID, &room.Status, &room.CreatedAt, &room.UpdatedAt)
}

// Update persists a full-field update, carrying forward the stored status
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, location = $2, capacity = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING status, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query, room.Name, room.Location, room.Capacity, room.ID).
		Scan(&room.Status, &room.CreatedAt, &room.UpdatedAt)
}

// UpdateStatus toggles the soft-delete flag only
func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status bool) (*models.Room, error) {
	query := `
		UPDATE rooms
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, name, location, capacity, status, created_at, updated_at
	`

	var room models.Room
	err := r.db.QueryRow(ctx, query, status, id).Scan(
		&room.ID, &room.Name, &room.Location, &room.Capacity,
		&room.Status, &room.CreatedAt, &room.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error updating room status: %w", err)
	}

	return &room, nil
}
