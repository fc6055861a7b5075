// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// Message is safe to show to API callers.
	Message string `json:"message"`

	// Code is a machine-readable error code (e.g., "VALIDATION_ERROR").
	Code string `json:"code"`

	// Details carries field-level messages for request validation failures.
	Details map[string]string `json:"details,omitempty"`

	// TraceID links the response to the request trace when tracing is on.
	TraceID string `json:"traceId,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeBadRequest   = "BAD_REQUEST"
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeConflict     = "CONFLICT"
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeInternal     = "INTERNAL_ERROR"
)

// MsgInternal is the message returned for errors that must not be exposed.
const MsgInternal = "an internal error occurred"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: message}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: message, Details: details}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetTraceID returns the trace id of the request span, or "".
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}
