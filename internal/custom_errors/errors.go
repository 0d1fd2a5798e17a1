package custom_errors

import "errors"

// Domain errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidID          = errors.New("invalid id")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserAlreadyExists  = errors.New("user with this email or username already exists")
)

// Infrastructure errors
var (
	ErrDatabaseQuery = errors.New("database query failed")
	ErrDatabaseScan  = errors.New("database scan failed")
	ErrCacheMiss     = errors.New("cache miss")
	ErrTokenSign     = errors.New("failed to sign token")
	ErrPasswordHash  = errors.New("failed to hash password")
)

// InputError carries a client-facing message for a rejected request field.
// It matches ErrInvalidInput under errors.Is.
type InputError struct {
	Message string
}

func NewInputError(message string) error {
	return &InputError{Message: message}
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
