package services

import (
	"context"
	"strings"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/app/repositories"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
	"github.com/rcardoso/schedula/internal/pkg/dberrors"
)

// RoomStore is the storage contract the room service depends on
type RoomStore interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Room, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	UpdateStatus(ctx context.Context, id int64, status bool) (*models.Room, error)
}

// RoomService handles room registry operations
type RoomService struct {
	rooms RoomStore
}

// NewRoomService creates a new room service
func NewRoomService(rooms RoomStore) *RoomService {
	return &RoomService{rooms: rooms}
}

func validateRoom(room *models.Room) []string {
	var messages []string

	if strings.TrimSpace(room.Name) == "" {
		messages = append(messages, "Name is required")
	}
	if strings.TrimSpace(room.Location) == "" {
		messages = append(messages, "Location is required")
	}
	if room.Capacity <= 0 {
		messages = append(messages, "Capacity must be greater than zero")
	}

	return messages
}

func mapRoomUniqueness(err error) error {
	if dberrors.IsUniqueViolation(err) {
		return apperrors.NewDuplicateKeyError(apperrors.ErrRoomNameExists, "Room name already registered")
	}
	return err
}

// ListRooms retrieves a page of rooms
func (s *RoomService) ListRooms(ctx context.Context, params repositories.ListParams) ([]models.Room, int64, error) {
	return s.rooms.List(ctx, params)
}

// GetRoomByID retrieves a room by ID
func (s *RoomService) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

// CreateRoom validates and inserts a new room
func (s *RoomService) CreateRoom(ctx context.Context, room *models.Room) error {
	if messages := validateRoom(room); len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	room.Name = strings.TrimSpace(room.Name)
	room.Location = strings.TrimSpace(room.Location)

	if err := s.rooms.Create(ctx, room); err != nil {
		return mapRoomUniqueness(err)
	}
	return nil
}

// UpdateRoom validates and persists a full-field update. The stored status
// is never modified on this path.
func (s *RoomService) UpdateRoom(ctx context.Context, room *models.Room) error {
	existing, err := s.rooms.GetByID(ctx, room.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrRoomNotFound
	}

	if messages := validateRoom(room); len(messages) > 0 {
		return apperrors.NewValidationError(messages)
	}

	room.Name = strings.TrimSpace(room.Name)
	room.Location = strings.TrimSpace(room.Location)

	if err := s.rooms.Update(ctx, room); err != nil {
		return mapRoomUniqueness(err)
	}
	return nil
}

// UpdateRoomStatus toggles the active flag without re-validation
func (s *RoomService) UpdateRoomStatus(ctx context.Context, id int64, status bool) (*models.Room, error) {
	room, err := s.rooms.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

// SoftDeleteRoom marks the room inactive
func (s *RoomService) SoftDeleteRoom(ctx context.Context, id int64) error {
	_, err := s.UpdateRoomStatus(ctx, id, false)
	return err
}
