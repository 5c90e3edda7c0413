package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidFormat indicates that a numeric input is not a parseable decimal.
var ErrInvalidFormat = errors.New("invalid number format")

// ErrOutOfRange indicates that a numeric input is non-positive or exceeds its digit bounds.
var ErrOutOfRange = errors.New("value out of range")

// ErrNoRouteFound indicates that no direct, reverse or cross rate exists for a pair.
var ErrNoRouteFound = errors.New("no exchange route found")

// ErrStorage indicates a lower-level persistence failure.
var ErrStorage = errors.New("storage failure")

// AppError is an error tagged with one of the sentinel kinds above.
// errors.Is matches both the kind and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the kind and the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError creates a storage-kind error carrying an HTTP status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: ErrStorage, Err: err}
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrValidation}
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Kind: ErrNotFound}
}

// NewDuplicateError creates a new already-exists error.
func NewDuplicateError(message string, err error) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Kind: ErrDuplicate, Err: err}
}

func NewInvalidFormatError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrInvalidFormat}
}

func NewOutOfRangeError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrOutOfRange}
}

func NewNoRouteFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Kind: ErrNoRouteFound}
}

// StatusCode returns the HTTP status for err, defaulting to 500.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidFormat), errors.Is(err, ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoRouteFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
