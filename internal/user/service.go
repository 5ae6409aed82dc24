package user

import (
	"context"
	"fmt"

	"github.com/redmonkez12/mini-auth-api/internal/logging"
)

// Service handles registration and profile lookup
type Service struct {
	store  Store
	hasher PasswordHasher
	cache  ProfileCache // nil when caching is disabled
	logger *logging.Logger
}

func NewService(store Store, hasher PasswordHasher, cache ProfileCache, logger *logging.Logger) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
		cache:  cache,
		logger: logger,
	}
}

// Register validates the request, rejects known emails, hashes the password and inserts the user.
// The email pre-check is advisory; a unique violation from the store is the final word.
func (s *Service) Register(ctx context.Context, req *SignupRequest) (*Profile, error) {
	age, err := req.Validate()
	if err != nil {
		return nil, err
	}

	exists, err := s.store.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile, err := s.store.Create(ctx, &NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Age:      age,
		Location: req.Location,
		Password: passwordHash,
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// GetProfile returns the public projection of the user with the given name
func (s *Service) GetProfile(ctx context.Context, name string) (*Profile, error) {
	if name == "" {
		return nil, ErrMissingName
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, name)
		if err != nil {
			s.logger.Warn("profile cache read failed", "name", name, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	profile, err := s.store.GetProfileByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, profile); err != nil {
			s.logger.Warn("profile cache write failed", "name", name, "error", err)
		}
	}

	return profile, nil
}

// Ping checks that the data store is reachable
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
