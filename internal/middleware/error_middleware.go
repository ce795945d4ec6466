package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcardoso/schedula/internal/app/models/dto"
	"github.com/rcardoso/schedula/internal/pkg/apperrors"
	"github.com/rcardoso/schedula/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Validation failures
// carry their accumulated messages; business-rule rejections and duplicates
// answer 400 with the rule's message; missing resources answer 404.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(apperrors.ValidationMessages(err)))
		return
	case errors.Is(err, apperrors.ErrScheduleConflict),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrSectionFull),
		errors.Is(err, apperrors.ErrDuplicateKey),
		errors.Is(err, apperrors.ErrSubjectCodeExists),
		errors.Is(err, apperrors.ErrInstructorExists),
		errors.Is(err, apperrors.ErrRoomNameExists),
		errors.Is(err, apperrors.ErrEnrollmentNumberExists),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(messageOf(err)))
		return
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrInstructorNotFound),
		errors.Is(err, apperrors.ErrRoomNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrSectionNotFound),
		errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(messageOf(err)))
		return
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}
}

// messageOf prefers the wrapped CustomError message over the sentinel text
func messageOf(err error) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return err.Error()
}
