package errx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	// SystemErrorMessage is the user-facing fallback for unexpected failures.
	// Nothing more specific may cross the API boundary.
	SystemErrorMessage = "service unavailable"
	// StorageErrorMessage describes conversation storage failures.
	StorageErrorMessage = "conversation storage failed"
	// StorageNotFoundMessage is returned when a storage key does not exist.
	StorageNotFoundMessage = "conversation not found"
)

// AppError carries an underlying error together with an HTTP status and a
// message that is safe to show to callers. The wrapped error is for logs only.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As chains.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError from its parts.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Validation builds the 400 error for a rejected request, joining the
// individual issue messages into one human-readable line.
func Validation(issues []string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Message: strings.Join(issues, "; "),
	}
}

// Is reports whether target matches the AppError itself or its cause.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As supports casting to *AppError or to any type in the wrapped chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}
