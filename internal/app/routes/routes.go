package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcardoso/schedula/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *controllers.Controllers) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	subjects := v1.Group("/subjects")
	{
		subjects.GET("", c.SubjectController.ListSubjects)
		subjects.GET("/:id", c.SubjectController.GetSubject)
		subjects.POST("", c.SubjectController.CreateSubject)
		subjects.PUT("/:id", c.SubjectController.UpdateSubject)
		subjects.DELETE("/:id", c.SubjectController.DeleteSubject)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.GET("", c.InstructorController.ListInstructors)
		instructors.GET("/:id", c.InstructorController.GetInstructor)
		instructors.POST("", c.InstructorController.CreateInstructor)
		instructors.PUT("/:id", c.InstructorController.UpdateInstructor)
		instructors.DELETE("/:id", c.InstructorController.DeleteInstructor)
	}

	rooms := v1.Group("/rooms")
	{
		rooms.GET("", c.RoomController.ListRooms)
		rooms.GET("/:id", c.RoomController.GetRoom)
		rooms.POST("", c.RoomController.CreateRoom)
		rooms.PUT("/:id", c.RoomController.UpdateRoom)
		rooms.DELETE("/:id", c.RoomController.DeleteRoom)
	}

	students := v1.Group("/students")
	{
		students.GET("", c.StudentController.ListStudents)
		students.GET("/:id", c.StudentController.GetStudent)
		students.POST("", c.StudentController.CreateStudent)
		students.PUT("/:id", c.StudentController.UpdateStudent)
		students.DELETE("/:id", c.StudentController.DeleteStudent)
	}

	sections := v1.Group("/sections")
	{
		sections.GET("", c.SectionController.ListSections)
		sections.GET("/:id", c.SectionController.GetSection)
		sections.POST("", c.SectionController.CreateSection)
		sections.PUT("/:id", c.SectionController.UpdateSection)
		sections.DELETE("/:id", c.SectionController.DeleteSection)

		// Roster sub-resources
		sections.GET("/:id/students", c.SectionController.GetRoster)
		sections.GET("/:id/available-students", c.SectionController.GetAvailableStudents)
		sections.POST("/:id/students", c.SectionController.EnrollStudent)
		sections.DELETE("/:id/students/:studentId", c.SectionController.UnenrollStudent)
	}
}
