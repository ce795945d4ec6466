// Package controllers holds the HTTP handlers. Controllers bind and sanity
// check requests, delegate to the services and translate service errors
// through the shared error handler; they never touch storage directly.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rcardoso/schedula/internal/app/models/dto"
	"github.com/rcardoso/schedula/internal/app/repositories"
	"github.com/rcardoso/schedula/internal/middleware"
)

// Controllers holds all the controller instances
type Controllers struct {
	SubjectController    *SubjectController
	InstructorController *InstructorController
	RoomController       *RoomController
	StudentController    *StudentController
	SectionController    *SectionController
}

// pathID parses the :id path parameter, answering 400 on garbage. The bool
// result reports whether the handler should continue.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid ID"))
		return 0, false
	}
	return id, true
}

// bindListQuery binds the common list query parameters, answering 400 on a
// malformed query string.
func bindListQuery(ctx *gin.Context) (repositories.ListParams, bool) {
	var query dto.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindingError(ctx, err)
		return repositories.ListParams{}, false
	}

	return repositories.ListParams{
		Page:           query.Page,
		Limit:          query.Limit,
		Search:         query.Search,
		Status:         query.StatusOrDefault(),
		OrderBy:        query.OrderBy,
		OrderDirection: query.OrderDirection,
	}, true
}
