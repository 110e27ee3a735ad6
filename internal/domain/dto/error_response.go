package dto

import "time"

// ErrorResponse is the standard JSON error body returned by the API.
//
// Fields:
//   - Message: human-readable description of what went wrong.
//   - ErrorDetails: underlying error text, when one is available.
//   - Timestamp: moment the error response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"ticker is required"`
	ErrorDetails string    `json:"error,omitempty" example:"sql: no rows in result set"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse from a message and an
// optional inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can be
// passed around as a regular error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
