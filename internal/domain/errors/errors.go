package errors

import (
	"net/http"

	"gatekeeper/internal/errors"
)

// Kind classifies an error by how the caller is expected to react to it.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error class
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Kind returns the error class
func (e *BaseError) Kind() Kind {
	return e.kind
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

// WithDetails returns a copy of the error carrying details.
// The copy still matches the original through errors.Is.
func (e *BaseError) WithDetails(details string) error {
	return &detailedError{BaseError: &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}, origin: e}
}

type detailedError struct {
	*BaseError
	origin *BaseError
}

func (e *detailedError) Is(target error) bool {
	return target == e.origin
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"user with email or username already exists",
		"",
	)

	ErrEmailAlreadyVerified = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"EMAIL_ALREADY_VERIFIED",
		"email is already verified",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid credentials",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"refresh token is invalid or expired",
		"",
	)

	ErrInvalidAccessToken = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"ACCESS_TOKEN_INVALID",
		"unauthorized request",
		"",
	)

	ErrVerificationTokenInvalid = NewBaseError(
		KindAuthentication,
		http.StatusBadRequest,
		"VERIFICATION_TOKEN_INVALID",
		"token is invalid or expired",
		"",
	)

	ErrTokenGenerationFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"TOKEN_GENERATION_FAILED",
		"something went wrong while generating tokens",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"received data is not valid",
		"",
	)

	ErrInvalidRequest = NewBaseError(
		KindValidation,
		http.StatusUnprocessableEntity,
		"INVALID_REQUEST",
		"received data is not valid",
		"",
	)

	ErrRateLimited = NewBaseError(
		KindValidation,
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"too many requests, please try again later",
		"",
	)

	// General errors
	ErrInternal = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

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

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error class
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
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

// KindOf classifies err. Errors that carry no AppError are internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}

	if appErr, ok := errors.ErrorAs[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}
