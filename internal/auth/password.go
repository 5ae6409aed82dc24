package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost matches the work factor the users table was seeded with
	DefaultBcryptCost = 10

	// MaxPasswordBytes is the most input bcrypt reads; longer passwords are
	// truncated, the same as the hashes already stored by other clients.
	MaxPasswordBytes = 72
)

// BcryptHasher hashes passwords with a salted bcrypt digest
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given cost
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash returns the bcrypt hash of the first MaxPasswordBytes bytes of password
func (h *BcryptHasher) Hash(password string) (string, error) {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}

	hash, err := bcrypt.GenerateFromPassword(b, h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
