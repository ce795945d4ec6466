package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/app/repositories"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
)

type fakeRoomStore struct {
	rooms  map[int64]*models.Room
	nextID int64
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: make(map[int64]*models.Room)}
}

func (f *fakeRoomStore) List(_ context.Context, _ repositories.ListParams) ([]models.Room, int64, error) {
	out := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRoomStore) GetByID(_ context.Context, id int64) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRoomStore) Create(_ context.Context, room *models.Room) error {
	f.nextID++
	room.ID = f.nextID
	room.Status = true
	copied := *room
	f.rooms[room.ID] = &copied
	return nil
}

func (f *fakeRoomStore) Update(_ context.Context, room *models.Room) error {
	existing, ok := f.rooms[room.ID]
	if !ok {
		return errors.New("room not found")
	}
	room.Status = existing.Status
	copied := *room
	f.rooms[room.ID] = &copied
	return nil
}

func (f *fakeRoomStore) UpdateStatus(_ context.Context, id int64, status bool) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	r.Status = status
	copied := *r
	return &copied, nil
}

func TestCreateRoomRejectsNonPositiveCapacity(t *testing.T) {
	svc := NewRoomService(newFakeRoomStore())

	for _, capacity := range []int{0, -5} {
		room := models.Room{Name: "Lab 101", Location: "Building A", Capacity: capacity}
		err := svc.CreateRoom(context.Background(), &room)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("capacity %d: expected validation failure, got %v", capacity, err)
		}
		messages := apperrors.ValidationMessages(err)
		if len(messages) != 1 || messages[0] != "Capacity must be greater than zero" {
			t.Errorf("capacity %d: unexpected messages %v", capacity, messages)
		}
	}
}

func TestCreateRoomValid(t *testing.T) {
	store := newFakeRoomStore()
	svc := NewRoomService(store)

	room := models.Room{Name: "Lab 101", Location: "Building A", Capacity: 30}
	if err := svc.CreateRoom(context.Background(), &room); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.ID == 0 || !room.Status {
		t.Errorf("expected persisted active room, got %+v", room)
	}
}

func TestUpdateRoomNotFound(t *testing.T) {
	svc := NewRoomService(newFakeRoomStore())
	room := models.Room{ID: 42, Name: "Lab 101", Location: "Building A", Capacity: 30}
	if err := svc.UpdateRoom(context.Background(), &room); !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Fatalf("expected room not found, got %v", err)
	}
}
