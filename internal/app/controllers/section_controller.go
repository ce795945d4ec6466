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

// SectionController handles section scheduling and roster operations
type SectionController struct {
	sectionService    *services.SectionService
	enrollmentService *services.EnrollmentService
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService *services.SectionService, enrollmentService *services.EnrollmentService) *SectionController {
	return &SectionController{
		sectionService:    sectionService,
		enrollmentService: enrollmentService,
	}
}

// ListSections retrieves a filtered, paginated page of sections
func (c *SectionController) ListSections(ctx *gin.Context) {
	params, ok := bindListQuery(ctx)
	if !ok {
		return
	}

	sections, total, err := c.sectionService.ListSections(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SectionListResponse{
		Sections:   sections,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetSection retrieves a section enriched with its subject, instructor and
// room names.
func (c *SectionController) GetSection(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	section, err := c.sectionService.GetSectionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, section)
}

// CreateSection creates a new section after validation and conflict checks
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	section := req.ToSection()
	if err := c.sectionService.CreateSection(ctx, &section); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, section)
}

// UpdateSection updates a section. A body carrying only the status field
// toggles the active flag without re-validation; anything else is a
// full-field update that re-runs validation and conflict detection.
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if req.IsStatusToggle() {
		section, err := c.sectionService.UpdateSectionStatus(ctx, id, *req.Status)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, section)
		return
	}

	section := req.ToSection()
	section.ID = id
	if err := c.sectionService.UpdateSection(ctx, &section); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, section)
}

// DeleteSection soft deletes a section
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.sectionService.SoftDeleteSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Section deleted successfully"})
}

// EnrollStudent adds a student to the section's roster
func (c *SectionController) EnrollStudent(ctx *gin.Context) {
	sectionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	occupancy, err := c.enrollmentService.EnrollStudent(ctx, sectionID, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EnrollmentResponse{
		Message:   "Student enrolled successfully",
		Occupancy: *occupancy,
	})
}

// UnenrollStudent removes a student from the section's roster
func (c *SectionController) UnenrollStudent(ctx *gin.Context) {
	sectionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := pathID(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.enrollmentService.UnenrollStudent(ctx, sectionID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student removed successfully"})
}

// GetRoster retrieves the section's enrolled students with its occupancy
func (c *SectionController) GetRoster(ctx *gin.Context) {
	sectionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	students, detail, room, err := c.enrollmentService.Roster(ctx, sectionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RosterResponse{
		Students: students,
		Section: dto.RosterSectionInfo{
			SectionName: detail.Name,
			RoomName:    room.Name,
			Capacity:    room.Capacity,
		},
		Occupancy: models.Occupancy{
			Occupied:  len(students),
			Total:     room.Capacity,
			Available: room.Capacity - len(students),
		},
	})
}

// GetAvailableStudents retrieves the active students not yet enrolled in the
// section.
func (c *SectionController) GetAvailableStudents(ctx *gin.Context) {
	sectionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	students, err := c.enrollmentService.AvailableStudents(ctx, sectionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AvailableStudentsResponse{Students: students})
}
