package errors

import (
	"net/http"

	"saferoute/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches on the business error code so detailed copies still match their sentinel
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Navigation session not found",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"Too many active navigation sessions",
		"",
	)

	ErrSessionOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"SESSION_OWNERSHIP_VIOLATION",
		"Navigation session belongs to another user",
		"",
	)

	// Route-related errors
	ErrRouteIndexOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"ROUTE_INDEX_OUT_OF_RANGE",
		"Route index is out of range",
		"",
	)

	ErrEmptyRoute = NewBaseError(
		http.StatusUnprocessableEntity,
		"EMPTY_ROUTE",
		"Selected route has no steps",
		"",
	)

	ErrNoActiveRoute = NewBaseError(
		http.StatusConflict,
		"NO_ACTIVE_ROUTE",
		"No route is currently selected",
		"",
	)

	// Routing provider errors
	ErrNoRouteFound = NewBaseError(
		http.StatusNotFound,
		"NO_ROUTE_FOUND",
		"No route could be found between the given points",
		"",
	)

	ErrRoutingRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"ROUTING_RATE_LIMITED",
		"Routing provider quota exceeded, please retry later",
		"",
	)

	ErrRoutingUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ROUTING_UNAVAILABLE",
		"Routing provider is unavailable",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid access token",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// UpstreamError represents a failed call to an external provider, implementing the AppError interface
type UpstreamError struct {
	base *BaseError
	err  error
}

// NewUpstreamError wraps a transport or decoding failure behind a public AppError
func NewUpstreamError(base *BaseError, err error) AppError {
	return &UpstreamError{
		base: base,
		err:  err,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.err == nil {
		return e.base.Error()
	}

	return e.base.Error() + ": " + e.err.Error()
}

// Unwrap exposes both the public sentinel and the upstream cause
func (e *UpstreamError) Unwrap() []error {
	if e.err == nil {
		return []error{e.base}
	}

	return []error{e.base, e.err}
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return e.base.HTTPCode()
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return e.base.ErrorCode()
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.base.Message()
}

// Details returns the public details only; the upstream cause stays in Error for logs
func (e *UpstreamError) Details() string {
	return e.base.Details()
}
