//go:build integration

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"role-explorer/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startContainer(t *testing.T, image, port string, waitFor wait.Strategy) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{port},
			WaitingFor:   waitFor,
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, mapped.Port())
}

// exerciseStore runs the round trip every backend must support
func exerciseStore(t *testing.T, store KVStore) {
	t.Helper()
	ctx := context.Background()

	repo := NewKVRepository(store)
	require.NoError(t, repo.Load(ctx))
	assert.Equal(t, 0, repo.Count())

	role := sampleRole("custom_integration")
	require.NoError(t, repo.Create(ctx, role))

	reloaded := NewKVRepository(store)
	require.NoError(t, reloaded.Load(ctx))
	got, err := reloaded.Get(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, role.PermissionAccess, got.PermissionAccess)

	snapshots := NewSnapshotter(store)
	require.NoError(t, snapshots.Snapshot(ctx))
	require.NoError(t, reloaded.Delete(ctx, role.ID))

	restored, err := snapshots.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
	require.NoError(t, reloaded.Load(ctx))
	_, err = reloaded.Get(ctx, role.ID)
	assert.NoError(t, err)
}

func TestRedisStoreIntegration(t *testing.T) {
	addr := startContainer(t, "redis:7-alpine", "6379/tcp",
		wait.ForLog("Ready to accept connections").WithStartupTimeout(30*time.Second))
	t.Setenv("REDIS_URL", "redis://"+addr)

	redis, err := database.NewRedis(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = redis.Close() })

	store := NewRedisStore(redis)
	assert.Equal(t, "redis", store.Backend())
	exerciseStore(t, store)
}

func TestMongoStoreIntegration(t *testing.T) {
	addr := startContainer(t, "mongo:7", "27017/tcp",
		wait.ForLog("Waiting for connections").WithStartupTimeout(60*time.Second))
	t.Setenv("MONGODB_URI", "mongodb://"+addr)
	t.Setenv("MONGODB_DATABASE", "role_explorer_test")

	ctx := context.Background()
	mongodb, err := database.NewMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongodb.Close(ctx) })

	store := NewMongoStore(mongodb.Database)
	assert.Equal(t, "mongo", store.Backend())
	exerciseStore(t, store)
}
