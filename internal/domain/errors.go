package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface lets the handler layer translate domain
// failures without a type switch per error.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing the HTTPError interface
type (
	// NotFoundError indicates a record is absent, or soft-deleted and not
	// visible to the requesting actor.
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input (e.g. blank comment text)
	ValidationError struct {
		Message string
	}

	// UnauthenticatedError indicates no resolvable actor on the request
	UnauthenticatedError struct {
		Message string
	}

	// ForbiddenError indicates an authenticated actor attempting an
	// ownership-gated action they are not allowed to perform.
	ForbiddenError struct {
		Message string
	}

	// RestoreExpiredError indicates a restore attempted after the restore
	// window closed. Distinct from Forbidden so callers can present
	// "too late" rather than "not allowed".
	RestoreExpiredError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string        { return e.Message }
func (e *ValidationError) Error() string      { return e.Message }
func (e *UnauthenticatedError) Error() string { return e.Message }
func (e *ForbiddenError) Error() string       { return e.Message }
func (e *RestoreExpiredError) Error() string  { return e.Message }

func (e *NotFoundError) StatusCode() int        { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int      { return http.StatusBadRequest }
func (e *UnauthenticatedError) StatusCode() int { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int       { return http.StatusForbidden }
func (e *RestoreExpiredError) StatusCode() int  { return http.StatusGone }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrRestoreExpired  = errors.New("restore window expired")

	// ErrStorage marks transient storage-layer failures (connectivity,
	// timeout). These are the only errors eligible for caller-directed
	// retry and are never folded into the domain taxonomy above.
	ErrStorage = errors.New("storage unavailable")
)

// Is hooks let errors.Is() match typed errors against their sentinels.
func (e *NotFoundError) Is(target error) bool        { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool      { return target == ErrValidation }
func (e *UnauthenticatedError) Is(target error) bool { return target == ErrUnauthenticated }
func (e *ForbiddenError) Is(target error) bool       { return target == ErrForbidden }
func (e *RestoreExpiredError) Is(target error) bool  { return target == ErrRestoreExpired }

// StorageError wraps an infrastructure failure from the storage layer,
// preserving the cause for logs while matching ErrStorage for callers.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// StorageError deliberately does not implement HTTPError: the handler
// layer logs the cause and responds with a generic 503 instead of
// echoing infrastructure details to the client.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }
