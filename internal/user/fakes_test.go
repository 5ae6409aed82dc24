package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore is an in-memory Store enforcing the same unique constraints as the users table.
type memStore struct {
	mu    sync.Mutex
	users []User

	existsErr error
	createErr error
	getErr    error
	pingErr   error

	getCalls int
}

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.existsErr != nil {
		return false, s.existsErr
	}
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Create(_ context.Context, nu *NewUser) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	for _, u := range s.users {
		if u.Email == nu.Email {
			return nil, ErrDuplicateEmail
		}
		if u.Name == nu.Name {
			return nil, ErrDuplicateName
		}
	}
	u := User{
		ID:           uuid.New(),
		Name:         nu.Name,
		Email:        nu.Email,
		Age:          nu.Age,
		Location:     nu.Location,
		PasswordHash: nu.Password,
		CreatedAt:    time.Now().UTC(),
	}
	s.users = append(s.users, u)
	return u.Profile(), nil
}

func (s *memStore) GetProfileByName(_ context.Context, name string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, u := range s.users {
		if u.Name == name {
			return u.Profile(), nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) Ping(context.Context) error {
	return s.pingErr
}

func (s *memStore) byEmail(email string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// prefixHasher is a deterministic stand-in for bcrypt
type prefixHasher struct {
	err error
}

func (h prefixHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

type memCache struct {
	mu       sync.Mutex
	profiles map[string]Profile
	getErr   error
	setErr   error
	sets     int
}

func newMemCache() *memCache {
	return &memCache{profiles: map[string]Profile{}}
}

func (c *memCache) Get(_ context.Context, name string) (*Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	p, ok := c.profiles[name]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *memCache) Set(_ context.Context, p *Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.profiles[p.Name] = *p
	return nil
}

var errBoom = errors.New("boom")
