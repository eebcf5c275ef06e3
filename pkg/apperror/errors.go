package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error by how the terminal should react to it.
type Kind int

const (
	// KindValidation is a local input error, rejected before any network call.
	KindValidation Kind = iota
	// KindNetwork is a transport or backend failure; the user may retry.
	KindNetwork
	// KindNotFound means the backend has no matching record.
	KindNotFound
	// KindConflict is a conflicting update reported by the backend.
	KindConflict
	// KindUnauthorized means the session is missing, invalid or expired.
	KindUnauthorized
	// KindInternal is an unexpected failure inside this module.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// AppError represents an application error with its taxonomy kind
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrSessionExpired       = &AppError{Kind: KindUnauthorized, Message: "Session has expired, sign in again"}
	ErrInvalidCredentials   = &AppError{Kind: KindUnauthorized, Message: "Invalid email or password"}
	ErrEmptyCart            = &AppError{Kind: KindValidation, Message: "Cart is empty"}
	ErrSubmissionInProgress = &AppError{Kind: KindValidation, Message: "A submission is already in progress"}
)

// NewValidationError creates a local validation error with a custom message
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewNetworkError wraps a transport or backend failure
func NewNetworkError(message string, err error) *AppError {
	return &AppError{Kind: KindNetwork, Message: message, Err: err}
}

// NewNotFoundError creates a not found error for the named resource
func NewNotFoundError(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewInternalError wraps an unexpected failure
func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal error", Err: err}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsValidation reports whether err is a local validation error
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsNetwork reports whether err is a retryable network failure
func IsNetwork(err error) bool { return IsKind(err, KindNetwork) }

// IsNotFound reports whether err is a missing-record error
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsConflict reports whether err is a conflicting-update error
func IsConflict(err error) bool { return IsKind(err, KindConflict) }

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindInternal, Message: fmt.Sprintf("%v", err), Err: err}
}
