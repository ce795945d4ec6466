package dto

import "github.com/rcardoso/schedula/internal/app/models"

// CreateRoomRequest is the payload for creating a room
type CreateRoomRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

// UpdateRoomRequest is the payload for updating a room. A body carrying only
// the status field is a status toggle.
type UpdateRoomRequest struct {
	Status   *bool   `json:"status"`
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Capacity *int    `json:"capacity"`
}

// IsStatusToggle reports whether the request only toggles the active flag
func (r UpdateRoomRequest) IsStatusToggle() bool {
	return r.Status != nil && r.Name == nil && r.Location == nil && r.Capacity == nil
}

// RoomListResponse is the paginated list body for rooms
type RoomListResponse struct {
	Rooms      []models.Room  `json:"rooms"`
	Pagination PaginationInfo `json:"pagination"`
}
