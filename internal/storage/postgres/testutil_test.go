package postgres

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a disposable PostgreSQL with the journal schema applied.
// Container teardown is registered with t.Cleanup.
func setupTestDB(t *testing.T) *Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("tracker_test"),
		postgres.WithUsername("tracker"),
		postgres.WithPassword("tracker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := NewPool(ctx, dsn, WithMaxConns(4), WithApplicationName("buy-tracker-test"))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applySchema(t, pool)
	return pool
}

// applySchema runs the migration files straight from the source tree.
// The migrations package imports this one, so it cannot be used here.
func applySchema(t *testing.T, pool *Pool) {
	t.Helper()

	_, self, _, ok := runtime.Caller(0)
	require.True(t, ok)
	files, err := filepath.Glob(filepath.Join(filepath.Dir(self), "..", "migrations", "postgres", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no postgres migrations found")

	for _, file := range files {
		script, err := os.ReadFile(file)
		require.NoError(t, err)
		_, err = pool.Exec(context.Background(), string(script))
		require.NoError(t, err, "apply %s", filepath.Base(file))
	}
}

func ptr[T any](v T) *T {
	return &v
}

// truncate empties the journal between subtests.
func truncate(t *testing.T, pool *Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE discovered_buys RESTART IDENTITY")
	require.NoError(t, err)
}
