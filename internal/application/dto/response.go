package dto

import (
	"time"

	"github.com/veilscan/veilscan/pkg/errors"
)

// APIResponse is the envelope every HTTP response is wrapped in.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorDTO   `json:"error,omitempty"`
	TraceID   string      `json:"trace_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// ErrorDTO carries the structured error payload.
type ErrorDTO struct {
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Description string            `json:"description,omitempty"`
	Details     map[string]string `json:"details,omitempty"`
}

// SuccessResponse wraps data in a success envelope.
func SuccessResponse(data interface{}, traceID string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		TraceID:   traceID,
		Timestamp: time.Now().Unix(),
	}
}

// ErrorResponse wraps any error in an error envelope. Non-AppError values
// are reported as internal errors.
func ErrorResponse(err error, traceID string) *APIResponse {
	appErr := errors.AsAppError(err)
	return &APIResponse{
		Success: false,
		Error: &ErrorDTO{
			Code:        appErr.Code,
			Message:     appErr.Message,
			Description: appErr.Description,
			Details:     appErr.Details,
		},
		TraceID:   traceID,
		Timestamp: time.Now().Unix(),
	}
}
