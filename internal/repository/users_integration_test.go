package repository_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/pagestrip/internal"
	"github.com/DukeRupert/pagestrip/internal/repository"
)

// openTestDB connects to TEST_DATABASE_URL, migrates and seeds it.
// Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration test")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.PingContext(context.Background()))
	require.NoError(t, internal.RunMigrations(db))
	require.NoError(t, internal.SeedDemoData(db))
	return db
}

func TestQueries_ListUsers_Integration(t *testing.T) {
	db := openTestDB(t)
	q := repository.New(db)
	ctx := context.Background()

	total, err := q.CountUsers(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, total, int64(30))

	first, err := q.ListUsers(ctx, repository.ListUsersParams{Limit: 10, Offset: 0, OrderBy: "id"})
	require.NoError(t, err)
	second, err := q.ListUsers(ctx, repository.ListUsersParams{Limit: 10, Offset: 10, OrderBy: "id"})
	require.NoError(t, err)

	require.Len(t, first, 10)
	require.Len(t, second, 10)
	assert.Less(t, first[9].ID, second[0].ID, "pages should not overlap")

	desc, err := q.ListUsers(ctx, repository.ListUsersParams{Limit: 5, OrderBy: "name", Desc: true})
	require.NoError(t, err)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Name, desc[i].Name)
	}
}

func TestQueries_SeedIsIdempotent_Integration(t *testing.T) {
	db := openTestDB(t)
	q := repository.New(db)

	before, err := q.CountUsers(context.Background())
	require.NoError(t, err)

	require.NoError(t, internal.SeedDemoData(db))

	after, err := q.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
