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

// InstructorController handles instructor related operations
type InstructorController struct {
	instructorService *services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService *services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// ListInstructors retrieves a filtered, paginated page of instructors
func (c *InstructorController) ListInstructors(ctx *gin.Context) {
	params, ok := bindListQuery(ctx)
	if !ok {
		return
	}

	instructors, total, err := c.instructorService.ListInstructors(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InstructorListResponse{
		Instructors: instructors,
		Pagination:  helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetInstructor retrieves a single instructor by id
func (c *InstructorController) GetInstructor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetInstructorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, instructor)
}

// CreateInstructor creates a new instructor
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	instructor := models.Instructor{
		Name:       req.Name,
		NationalID: req.NationalID,
		Degree:     req.Degree,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	if err := c.instructorService.CreateInstructor(ctx, &instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, instructor)
}

// UpdateInstructor updates an instructor, dispatching status-only bodies to
// the toggle path.
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if req.IsStatusToggle() {
		instructor, err := c.instructorService.UpdateInstructorStatus(ctx, id, *req.Status)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, instructor)
		return
	}

	instructor := models.Instructor{ID: id, Phone: req.Phone}
	if req.Name != nil {
		instructor.Name = *req.Name
	}
	if req.NationalID != nil {
		instructor.NationalID = *req.NationalID
	}
	if req.Degree != nil {
		instructor.Degree = *req.Degree
	}
	if req.Email != nil {
		instructor.Email = *req.Email
	}
	if err := c.instructorService.UpdateInstructor(ctx, &instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, instructor)
}

// DeleteInstructor soft deletes an instructor
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.instructorService.SoftDeleteInstructor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Instructor deleted successfully"})
}
