package errors

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Internal detail, never shown in production
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

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying the given detail.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches two BaseErrors by error code so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Unauthenticated.",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found.",
		"",
	)

	ErrMethodNotAllowed = NewBaseError(
		http.StatusMethodNotAllowed,
		"METHOD_NOT_ALLOWED",
		"Method not allowed.",
		"",
	)

	ErrMalformedRequest = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_REQUEST",
		"The request body could not be parsed.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password could not be processed.",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Token could not be issued.",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server Error",
		"",
	)
)

// Login failure message. Shared by the unknown-email and wrong-password paths.
const MessageInvalidCredentials = "The provided credentials are incorrect."

// MessageEmailTaken is reported on the email field when another account owns the address.
const MessageEmailTaken = "The email has already been taken."

// ValidationError is a 422 carrying per-field messages.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty validation error.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// NewFieldError creates a validation error with one message on one field.
func NewFieldError(field, message string) *ValidationError {
	return NewValidationError().Add(field, message)
}

// Add appends a message to a field and returns the receiver.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], message)

	return e
}

// HasErrors reports whether any field has a message.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	return e.Message()
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message follows the "first message (and N more errors)" summary convention.
func (e *ValidationError) Message() string {
	fields := make([]string, 0, len(e.Fields))
	total := 0
	for field, messages := range e.Fields {
		fields = append(fields, field)
		total += len(messages)
	}
	if total == 0 {
		return "The given data was invalid."
	}
	sort.Strings(fields)

	first := e.Fields[fields[0]][0]
	switch rest := total - 1; rest {
	case 0:
		return first
	case 1:
		return first + " (and 1 more error)"
	default:
		return first + " (and " + strconv.Itoa(rest) + " more errors)"
	}
}

func (e *ValidationError) Details() string {
	return ""
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Server Error"
}

func (e *DatabaseExecuteError) Details() string {
	if e.details == "" {
		return e.err.Error()
	}

	return e.details + ": " + e.err.Error()
}
