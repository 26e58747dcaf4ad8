package apperrors

import "errors"

// Base categories. Every error returned by services wraps one of these so the
// HTTP layer can translate it without knowing the domain.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrConflict           = errors.New("conflict")
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// Authentication errors
var (
	ErrTokenMissing = NewCustomError(ErrUnauthenticated, "authorization header missing")
	ErrTokenExpired = NewCustomError(ErrUnauthenticated, "token expired")
	ErrTokenInvalid = NewCustomError(ErrUnauthenticated, "invalid token")
	ErrUserGone     = NewCustomError(ErrUnauthenticated, "token is not valid - user not found")
)

// Authorization errors
var (
	ErrWrongRole        = NewCustomError(ErrPermissionDenied, "your role does not allow this operation")
	ErrNotOwner         = NewCustomError(ErrPermissionDenied, "you do not own this resource")
	ErrAdminUndeletable = NewCustomError(ErrPermissionDenied, "admin accounts cannot be deleted")
)

// Resource errors
var (
	ErrUserNotFound        = NewCustomError(ErrResourceNotFound, "user not found")
	ErrInternshipNotFound  = NewCustomError(ErrResourceNotFound, "internship not found")
	ErrApplicationNotFound = NewCustomError(ErrResourceNotFound, "application not found")
)

// Conflict errors
var (
	ErrEmailAlreadyExists   = NewCustomError(ErrConflict, "user already exists")
	ErrDuplicateApplication = NewCustomError(ErrConflict, "you have already applied for this internship")
)

// NewValidationError creates a validation error carrying per-field messages
func NewValidationError(message string, fields map[string]interface{}) error {
	return (&CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}).WithDetails(fields)
}

// CodeStoreTimeout marks store failures caused by an expired deadline.
const CodeStoreTimeout = "STORE_TIMEOUT"

// NewStoreError wraps a low-level store failure. The cause is kept for logging
// and never rendered to clients.
func NewStoreError(op string, cause error) error {
	return &CustomError{
		Err:     ErrStoreUnavailable,
		Message: op,
		Cause:   cause,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
	Cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the category and the underlying cause to errors.Is/As.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// PublicMessage returns the message safe to show to a client. Store failures
// collapse to a generic text.
func PublicMessage(err error) string {
	if errors.Is(err, ErrStoreUnavailable) {
		return "internal server error"
	}
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return err.Error()
}
