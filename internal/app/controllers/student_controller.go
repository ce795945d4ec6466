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

// StudentController handles student related operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents retrieves a filtered, paginated page of students
func (c *StudentController) ListStudents(ctx *gin.Context) {
	params, ok := bindListQuery(ctx)
	if !ok {
		return
	}

	students, total, err := c.studentService.ListStudents(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Students:   students,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Limit),
	})
}

// GetStudent retrieves a single student by id
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent creates a new student
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student := models.Student{
		Name:             req.Name,
		EnrollmentNumber: req.EnrollmentNumber,
	}
	if err := c.studentService.CreateStudent(ctx, &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent updates a student, dispatching status-only bodies to the
// toggle path.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if req.IsStatusToggle() {
		student, err := c.studentService.UpdateStudentStatus(ctx, id, *req.Status)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, student)
		return
	}

	student := models.Student{ID: id}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.EnrollmentNumber != nil {
		student.EnrollmentNumber = *req.EnrollmentNumber
	}
	if err := c.studentService.UpdateStudent(ctx, &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent soft deletes a student
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.SoftDeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}
