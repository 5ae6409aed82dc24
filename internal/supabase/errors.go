package supabase

import (
	"errors"
	"regexp"
)

const (
	// CodeNoRows is returned when a single-object request matched zero or many rows
	CodeNoRows = "PGRST116"
	// CodeUniqueViolation is the Postgres SQLSTATE for unique_violation
	CodeUniqueViolation = "23505"
)

// postgrest-go reports API failures as "(<code>) <message>"
var apiErrorPattern = regexp.MustCompile(`^\(([0-9A-Z]*)\) (.*)$`)

// Error is a PostgREST API error recovered from a postgrest-go error
type Error struct {
	Code    string
	Message string
	err     error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// ParseError extracts the PostgREST code and message from err or anything it wraps.
// It returns nil when err is not an API error (transport or decode failures).
func ParseError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		if m := apiErrorPattern.FindStringSubmatch(e.Error()); m != nil {
			return &Error{Code: m[1], Message: m[2], err: e}
		}
	}

	return nil
}

// IsNoRows reports whether err is a PostgREST "no row matched a single-row query" error
func IsNoRows(err error) bool {
	apiErr := ParseError(err)
	return apiErr != nil && apiErr.Code == CodeNoRows
}

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool {
	apiErr := ParseError(err)
	return apiErr != nil && apiErr.Code == CodeUniqueViolation
}
