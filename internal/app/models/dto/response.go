package dto

// SuccessResponse is the standard body for operations that only report a message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error body. Errors carries the accumulated
// field-level messages for validation failures and is omitted otherwise.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// NewErrorResponse creates an error response with a single message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// NewValidationErrorResponse creates an error response carrying every
// validation message
func NewValidationErrorResponse(messages []string) ErrorResponse {
	return ErrorResponse{
		Message: "Invalid data",
		Errors:  messages,
	}
}
