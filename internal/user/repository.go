package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/mini-auth-api/internal/database"
)

// SQLSTATE unique_violation
const pqUniqueViolation = "23505"

// Repository stores users directly in Postgres through Bun
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// EmailExists reports whether any user already has this email
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*database.User)(nil)).
		Where("email = ?", email).
		Exists(ctx)
	if err != nil {
		return false, storeError("check email", err)
	}

	return exists, nil
}

// Create inserts a new user into the database
func (r *Repository) Create(ctx context.Context, u *NewUser) (*Profile, error) {
	dbUser := &database.User{
		Name:     u.Name,
		Email:    u.Email,
		Age:      u.Age,
		Location: u.Location,
		Password: u.Password,
	}

	_, err := r.db.NewInsert().
		Model(dbUser).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return nil, translateDBError("insert user", err)
	}

	return mapDBUserToModel(dbUser).Profile(), nil
}

// GetProfileByName retrieves a user by name without ever reading the password column
func (r *Repository) GetProfileByName(ctx context.Context, name string) (*Profile, error) {
	dbUser := new(database.User)
	if err := r.profileByName(dbUser, name).Scan(ctx); err != nil {
		return nil, translateDBError("get profile", err)
	}

	return mapDBUserToModel(dbUser).Profile(), nil
}

func (r *Repository) profileByName(dest *database.User, name string) *bun.SelectQuery {
	return r.db.NewSelect().
		Model(dest).
		Column(ProfileColumns...).
		Where("name = ?", name).
		Limit(1)
}

// Ping verifies the database connection
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return storeError("ping", err)
	}
	return nil
}

// translateDBError maps lib/pq and database/sql errors onto the user package errors
func translateDBError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		if conflict := conflictFromUniqueViolation(pqErr.Constraint, pqErr.Detail); conflict != nil {
			return conflict
		}
	}

	return storeError(op, err)
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:           dbu.ID,
		Name:         dbu.Name,
		Email:        dbu.Email,
		Age:          dbu.Age,
		Location:     dbu.Location,
		PasswordHash: dbu.Password,
		CreatedAt:    dbu.CreatedAt,
	}
}
