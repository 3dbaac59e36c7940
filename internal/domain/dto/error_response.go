package dto

import "time"

// ErrorResponse is the standardized error body returned by the API.
//
// The Message field is serialized as "error" per the public contract;
// ErrorDetails carries the inner error text when one exists and is
// omitted otherwise. Internals (stack traces, SQL) are never included.
type ErrorResponse struct {
	Message      string    `json:"error" example:"stock query parameter is required"`
	ErrorDetails string    `json:"details,omitempty" example:"context deadline exceeded"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-01T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's c.Error() chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now().UTC(),
	}
}
