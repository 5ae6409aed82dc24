package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a full users row. Only the store layer ever sees PasswordHash.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Age          int       `json:"age"`
	Location     string    `json:"location"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the public projection of a user. It has no password field at all.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser is the insert payload; Password already holds the hash.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Location string `json:"location"`
	Password string `json:"password"`
}

// ProfileColumns is the column projection used for every profile read
var ProfileColumns = []string{"id", "name", "email", "age", "location", "created_at"}

// Profile returns the public projection of u
func (u *User) Profile() *Profile {
	return &Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
	}
}
