package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrBadRequest       = errors.New("bad request")
)

// Subject errors
var (
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrSubjectCodeExists = errors.New("subject code already registered")
)

// Instructor errors
var (
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrInstructorExists   = errors.New("national ID or email already registered")
)

// Room errors
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomNameExists = errors.New("room name already registered")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrEnrollmentNumberExists = errors.New("enrollment number already registered")
)

// Section and enrollment errors
var (
	ErrSectionNotFound    = errors.New("section not found")
	ErrScheduleConflict   = errors.New("schedule conflict")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this section")
	ErrSectionFull        = errors.New("section is full")
	ErrEnrollmentNotFound = errors.New("student is not enrolled in this section")
)

// CustomError represents application-specific errors with additional context.
// Messages carries the accumulated field-level messages for validation failures.
type CustomError struct {
	Err      error
	Message  string
	Messages []string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error carrying every accumulated message
func NewValidationError(messages []string) error {
	return &CustomError{
		Err:      ErrValidationFailed,
		Message:  "invalid data",
		Messages: messages,
	}
}

// NewConflictError creates a schedule-conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrScheduleConflict,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewDuplicateKeyError wraps a uniqueness sentinel with a domain-specific message
func NewDuplicateKeyError(sentinel error, message string) error {
	return &CustomError{
		Err:     sentinel,
		Message: message,
	}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// ValidationMessages extracts the accumulated message list from a validation
// error, falling back to the single error message.
func ValidationMessages(err error) []string {
	var custom *CustomError
	if errors.As(err, &custom) && len(custom.Messages) > 0 {
		return custom.Messages
	}
	return []string{err.Error()}
}
