package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MinCost - 1)
	require.Error(t, err)

	_, err = NewBcryptHasher(bcrypt.MaxCost + 1)
	require.Error(t, err)

	h, err := NewBcryptHasher(DefaultBcryptCost)
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestBcryptHasher_Hash(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "secret123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"unicode password", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.NotEqual(t, tt.password, hash)
			require.True(t, strings.HasPrefix(hash, "$2a$"), "hash should be bcrypt encoded")

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, bcrypt.MinCost, cost)

			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
			require.ErrorIs(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password+"x")), bcrypt.ErrMismatchedHashAndPassword)
		})
	}
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash1, err := h.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := h.Hash("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
}

func TestBcryptHasher_LongPasswordsAreTruncated(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	prefix := strings.Repeat("a", MaxPasswordBytes)
	hash, err := h.Hash(prefix + "tail that bcrypt never reads")
	require.NoError(t, err)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(prefix)))
	require.ErrorIs(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(prefix[:MaxPasswordBytes-1])), bcrypt.ErrMismatchedHashAndPassword)
}
