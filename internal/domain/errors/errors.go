// Package errors defines the application error taxonomy. Every failure a
// core operation can surface is one of these kinds, so the delivery layer
// can map them to transport status codes without inspecting messages.
package errors

import (
	"net/http"

	"ecoconnect/internal/errors"
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
	// Validation errors: malformed or missing client input.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"unrecognized pickup status",
		"",
	)

	ErrInvalidWastepicker = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WASTEPICKER",
		"wastepicker id does not resolve to an active waste-picker",
		"",
	)

	ErrUnsupportedImageType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_IMAGE_TYPE",
		"unsupported image type; use PNG, JPG, JPEG, GIF or WebP",
		"",
	)

	// Not-found errors: a referenced entity id does not exist.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrWastepickerNotFound = NewBaseError(
		http.StatusNotFound,
		"WASTEPICKER_NOT_FOUND",
		"wastepicker not found",
		"",
	)

	ErrPickupNotFound = NewBaseError(
		http.StatusNotFound,
		"PICKUP_NOT_FOUND",
		"pickup request not found",
		"",
	)

	ErrCenterNotFound = NewBaseError(
		http.StatusNotFound,
		"CENTER_NOT_FOUND",
		"recycling center not found",
		"",
	)

	// Conflict errors: valid request, but the current state forbids it.
	ErrPickupNotAvailable = NewBaseError(
		http.StatusConflict,
		"PICKUP_NOT_AVAILABLE",
		"pickup request is not available for acceptance",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"status transition is not allowed from the current state",
		"",
	)

	ErrPickupAlreadyClosed = NewBaseError(
		http.StatusConflict,
		"PICKUP_ALREADY_CLOSED",
		"cannot cancel a completed or already cancelled request",
		"",
	)

	// Account errors.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"username or email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	// Collaborator errors.
	ErrClassificationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CLASSIFICATION_FAILED",
		"waste classification failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)
)

// DatabaseExecuteError represents a persistence failure, implementing the
// AppError interface. Any partially-applied multi-step mutation is rolled
// back before this surfaces.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
