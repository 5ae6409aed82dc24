package user

import (
	"context"
	"errors"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"github.com/redmonkez12/mini-auth-api/internal/supabase"
)

const usersTable = "users"

// PostgRESTRepository stores users through the Supabase REST API.
// postgrest-go takes no context, so ctx is only checked before each call.
type PostgRESTRepository struct {
	client *postgrest.Client
}

func NewPostgRESTRepository(client *postgrest.Client) *PostgRESTRepository {
	return &PostgRESTRepository{client: client}
}

// EmailExists reports whether any user already has this email.
// It reads a list rather than a single object so duplicate rows still count as a hit.
func (r *PostgRESTRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, storeError("check email", err)
	}

	var rows []struct {
		Email string `json:"email"`
	}
	_, err := r.client.From(usersTable).
		Select("email", "", false).
		Eq("email", email).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return false, storeError("check email", err)
	}

	return len(rows) > 0, nil
}

// Create inserts a new user and returns its public projection
func (r *PostgRESTRepository) Create(ctx context.Context, u *NewUser) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError("insert user", err)
	}

	var created []Profile
	_, err := r.client.From(usersTable).
		Insert(u, false, "", "representation", "").
		ExecuteTo(&created)
	if err != nil {
		if supabase.IsUniqueViolation(err) {
			// The code is all postgrest-go keeps; the constraint name is in the message
			if conflict := conflictFromUniqueViolation(supabase.ParseError(err).Message, ""); conflict != nil {
				return nil, conflict
			}
		}
		return nil, storeError("insert user", err)
	}

	if len(created) == 0 {
		return nil, storeError("insert user", errors.New("insert returned no rows"))
	}

	return &created[0], nil
}

// GetProfileByName fetches exactly one user by name; the password column is never selected
func (r *PostgRESTRepository) GetProfileByName(ctx context.Context, name string) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError("get profile", err)
	}

	profile := new(Profile)
	_, err := r.client.From(usersTable).
		Select(strings.Join(ProfileColumns, ","), "", false).
		Eq("name", name).
		Single().
		ExecuteTo(profile)
	if err != nil {
		if supabase.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, storeError("get profile", err)
	}

	return profile, nil
}

// Ping issues a minimal read against the users table.
// postgrest-go's own Ping is avoided because a failure there poisons the client.
func (r *PostgRESTRepository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return storeError("ping", err)
	}

	var rows []map[string]any
	if _, err := r.client.From(usersTable).Select("id", "", false).Limit(1, "").ExecuteTo(&rows); err != nil {
		return storeError("ping", err)
	}
	return nil
}
