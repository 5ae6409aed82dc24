package user

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
)

// one '@', no whitespace, at least one '.' after the '@'
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignupRequest represents the registration request body.
// Age stays raw so a quoted or non-numeric value can be told apart from a missing one.
type SignupRequest struct {
	Name     string          `json:"name" example:"Alice"`
	Email    string          `json:"email" example:"alice@example.com"`
	Age      json.RawMessage `json:"age" swaggertype:"integer" example:"30"`
	Location string          `json:"location" example:"NYC"`
	Password string          `json:"password" example:"secret123"`
}

// Validate checks the request in order (presence, email, age) and returns the parsed age
func (r *SignupRequest) Validate() (int, error) {
	if r.Name == "" || r.Email == "" || r.Location == "" || r.Password == "" || ageMissing(r.Age) {
		return 0, ErrMissingFields
	}

	if !ValidEmail(r.Email) {
		return 0, ErrInvalidEmail
	}

	age, ok := parseAge(r.Age)
	if !ok {
		return 0, ErrInvalidAge
	}

	return age, nil
}

// ValidEmail reports whether email looks like local@domain.tld
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ageMissing(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	return len(v) == 0 || bytes.Equal(v, []byte("null")) || bytes.Equal(v, []byte(`""`))
}

// parseAge accepts only a JSON number that is a whole value in (0, MaxInt32]
func parseAge(raw json.RawMessage) (int, bool) {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || v[0] == '"' {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, false
	}
	if n <= 0 || n != math.Trunc(n) || n > math.MaxInt32 {
		return 0, false
	}

	return int(n), true
}
