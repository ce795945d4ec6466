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

// SubjectController handles subject related operations
type SubjectController struct {
	subjectService *services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService *services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// ListSubjects retrieves a filtered, paginated page of subjects
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	params, ok := bindListQuery(ctx)
	if !ok {
		return
	}

	subjects, total, err := c.subjectService.ListSubjects(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SubjectListResponse{
		Subjects:   subjects,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetSubject retrieves a single subject by id
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubjectByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// CreateSubject creates a new subject
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	subject := models.Subject{
		Name:   req.Name,
		Code:   req.Code,
		Period: req.Period,
	}
	if err := c.subjectService.CreateSubject(ctx, &subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, subject)
}

// UpdateSubject updates a subject. A body carrying only the status field
// toggles the active flag; anything else replaces the subject's fields.
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if req.IsStatusToggle() {
		subject, err := c.subjectService.UpdateSubjectStatus(ctx, id, *req.Status)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, subject)
		return
	}

	subject := models.Subject{ID: id}
	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Code != nil {
		subject.Code = *req.Code
	}
	if req.Period != nil {
		subject.Period = *req.Period
	}
	if err := c.subjectService.UpdateSubject(ctx, &subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// DeleteSubject soft deletes a subject
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.SoftDeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Subject deleted successfully"})
}
