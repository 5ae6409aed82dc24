package user

import (
	"errors"
	"strings"

	"github.com/redmonkez12/mini-auth-api/internal/database"
)

var (
	ErrMissingFields  = errors.New("all fields are required: name, email, age, location, password")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidAge     = errors.New("age must be a positive number")
	ErrMissingName    = errors.New("name query parameter is required")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateName  = errors.New("name already taken")
	ErrNotFound       = errors.New("user not found")
)

// StoreError wraps an upstream data store failure. Its message is the
// store's own error text so it can be surfaced as response details.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// conflictFromUniqueViolation maps a unique violation to the matching conflict
// error. The constraint name decides; the "Key (col)=" detail prefix is only a
// fallback for stores that do not report it.
func conflictFromUniqueViolation(constraint, detail string) error {
	switch {
	case strings.Contains(constraint, database.UsersEmailIndex):
		return ErrDuplicateEmail
	case strings.Contains(constraint, database.UsersNameIndex):
		return ErrDuplicateName
	case strings.HasPrefix(detail, "Key (email)="):
		return ErrDuplicateEmail
	case strings.HasPrefix(detail, "Key (name)="):
		return ErrDuplicateName
	default:
		return nil
	}
}
