package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcardoso/schedula/internal/app/models"
	"github.com/rcardoso/schedula/internal/app/models/dto"
	"github.com/rcardoso/schedula/internal/app/services"
	"github.com/rcardoso/schedula/internal/middleware"
	"github.com/rcardoso/schedula/internal/pkg/helpers"
)

// RoomController handles room related operations
type RoomController struct {
	roomService *services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// ListRooms retrieves a filtered, paginated page of rooms
func (c *RoomController) ListRooms(ctx *gin.Context) {
	params, ok := bindListQuery(ctx)
	if !ok {
		return
	}

	rooms, total, err := c.roomService.ListRooms(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RoomListResponse{
		Rooms:      rooms,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetRoom retrieves a single room by id
func (c *RoomController) GetRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	room, err := c.roomService.GetRoomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, room)
}

// CreateRoom creates a new room
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	room := models.Room{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
	}
	if err := c.roomService.CreateRoom(ctx, &room); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, room)
}

// UpdateRoom updates a room, dispatching status-only bodies to the toggle path
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if req.IsStatusToggle() {
		room, err := c.roomService.UpdateRoomStatus(ctx, id, *req.Status)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, room)
		return
	}

	room := models.Room{ID: id}
	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Location != nil {
		room.Location = *req.Location
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if err := c.roomService.UpdateRoom(ctx, &room); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, room)
}

// DeleteRoom soft deletes a room
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.roomService.SoftDeleteRoom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Room deleted successfully"})
}
