package clickhouse

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testImage = "clickhouse/clickhouse-server:24.1-alpine"

// setupTestDB starts a disposable ClickHouse server with the schema applied.
// Container teardown is registered with t.Cleanup.
func setupTestDB(t *testing.T) *Conn {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImage,
			ExposedPorts: []string{"9000/tcp", "8123/tcp"},
			Env: map[string]string{
				"CLICKHOUSE_DB":       "tracker_test",
				"CLICKHOUSE_USER":     "default",
				"CLICKHOUSE_PASSWORD": "",
			},
			WaitingFor: wait.ForAll(
				wait.ForHTTP("/ping").WithPort("8123/tcp").WithStartupTimeout(60*time.Second),
				wait.ForListeningPort("9000/tcp"),
			),
		},
		Started: true,
	})
	require.NoError(t, err, "start clickhouse container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate clickhouse container: %v", err)
		}
	})

	endpoint, err := container.PortEndpoint(ctx, "9000/tcp", "")
	require.NoError(t, err)

	conn, err := NewConn(ctx, fmt.Sprintf("clickhouse://%s/tracker_test", endpoint))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	applySchema(t, conn)
	return conn
}

// applySchema runs the migration scripts straight from the source tree.
// The migrations package imports this one, so it cannot be used here.
func applySchema(t *testing.T, conn *Conn) {
	t.Helper()

	_, self, _, ok := runtime.Caller(0)
	require.True(t, ok)
	files, err := filepath.Glob(filepath.Join(filepath.Dir(self), "..", "migrations", "clickhouse", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no clickhouse migrations found")

	for _, file := range files {
		script, err := os.ReadFile(file)
		require.NoError(t, err)
		require.NoError(t, conn.ExecScript(context.Background(), string(script)), "apply %s", filepath.Base(file))
	}
}
