package user

import "context"

// Store is the remote data client seen by the user service.
// Implementations translate driver errors into ErrNotFound,
// ErrDuplicateEmail, ErrDuplicateName or *StoreError.
type Store interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *NewUser) (*Profile, error)
	GetProfileByName(ctx context.Context, name string) (*Profile, error)
	Ping(ctx context.Context) error
}

// ProfileCache is an optional read-through cache for profile lookups.
// Get returns (nil, nil) on a miss.
type ProfileCache interface {
	Get(ctx context.Context, name string) (*Profile, error)
	Set(ctx context.Context, p *Profile) error
}

// PasswordHasher turns a plaintext password into a one-way hash
type PasswordHasher interface {
	Hash(password string) (string, error)
}
