package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDatabase connects to the database named by TEST_DATABASE_URL.
// The repository suite is skipped when the variable is unset so the
// rest of the tests run without a local PostgreSQL.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)
	return db
}

// truncateTables clears the given tables before and after the test.
func truncateTables(t *testing.T, db *database.DB, tables ...string) {
	t.Helper()

	clear := func() {
		for _, table := range tables {
			_, err := db.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
			require.NoError(t, err)
		}
	}
	clear()
	t.Cleanup(clear)
}

func createTestWorker(t *testing.T, db *database.DB, username, name string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO workers (id, username, email, worker_name, password_hash, role, is_approved, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, 'worker', true, true)
		RETURNING id
	`, username, username+"@example.com", name, "test-password-hash").Scan(&id)
	require.NoError(t, err)
	return id
}
