package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

const (
	// Index names follow Postgres' default "<table>_<column>_key" so
	// unique violations read the same whichever way the table was created.
	UsersEmailIndex = "users_email_key"
	UsersNameIndex  = "users_name_key"
)

var uniqueIndexes = []struct {
	name   string
	column string
}{
	{UsersEmailIndex, "email"},
	{UsersNameIndex, "name"},
}

// EnsureSchema creates the users table and its unique indexes when missing.
// It is idempotent and only ever adds objects.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if _, err := createUsersTable(db).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	for _, idx := range uniqueIndexes {
		if _, err := createUniqueIndex(db, idx.name, idx.column).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

func createUsersTable(db *bun.DB) *bun.CreateTableQuery {
	return db.NewCreateTable().
		Model((*User)(nil)).
		IfNotExists()
}

func createUniqueIndex(db *bun.DB, name, column string) *bun.CreateIndexQuery {
	return db.NewCreateIndex().
		Model((*User)(nil)).
		Index(name).
		Unique().
		IfNotExists().
		Column(column)
}
