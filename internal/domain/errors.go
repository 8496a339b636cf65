package domain

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode classifies a failed triage request.
type ErrorCode string

const (
	CodeMalformedRequest    ErrorCode = "MALFORMED_REQUEST"
	CodeInvalidField        ErrorCode = "INVALID_FIELD"
	CodeSymptomsTooLong     ErrorCode = "SYMPTOMS_TOO_LONG"
	CodeRateLimited         ErrorCode = "RATE_LIMITED"
	CodeRouteNotFound       ErrorCode = "ROUTE_NOT_FOUND"
	CodeAnalysisUnavailable ErrorCode = "ANALYSIS_UNAVAILABLE"
	CodeInternal            ErrorCode = "INTERNAL"
)

// HTTPStatus maps the code onto the response status.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeMalformedRequest, CodeInvalidField:
		return http.StatusBadRequest
	case CodeSymptomsTooLong:
		return http.StatusRequestEntityTooLarge
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeRouteNotFound:
		return http.StatusNotFound
	case CodeAnalysisUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the body of every failed HTTP response, under the "error" key.
type APIError struct {
	Code          ErrorCode `json:"code"`
	Message       string    `json:"message"`
	Field         string    `json:"field,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAPIError stamps a new error with the current time.
func NewAPIError(code ErrorCode, message string) *APIError {
	return &APIError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// ForField names the request field that was rejected.
func (e *APIError) ForField(field string) *APIError {
	e.Field = field
	return e
}

// ValidationError rejects a single request field before analysis runs.
// The engine itself never fails; these only come from request boundaries.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
	Code    ErrorCode   `json:"-"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates an INVALID_FIELD error.
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
		Code:    CodeInvalidField,
	}
}

// NewSymptomsTooLongError rejects symptom text over limit bytes.
func NewSymptomsTooLongError(size, limit int) *ValidationError {
	return &ValidationError{
		Field:   "symptoms",
		Message: fmt.Sprintf("Must not exceed %d bytes", limit),
		Value:   size,
		Code:    CodeSymptomsTooLong,
	}
}

// APIError converts the validation failure into a response body.
func (e *ValidationError) APIError() *APIError {
	code := e.Code
	if code == "" {
		code = CodeInvalidField
	}
	return NewAPIError(code, e.Message).ForField(e.Field)
}
