package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlvinDakz/budgetease-api/config"
)

// openTestDB gives each test a migrated in-memory database.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := config.OpenDB(":memory:")
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, config.RunMigrations(db), "failed to run migrations")

	return db
}
