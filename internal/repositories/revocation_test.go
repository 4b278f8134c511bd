package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	assert.NoError(t, rdb.Ping(context.Background()).Err())

	teardown := func() {
		rdb.Close()
		container.Terminate(context.Background())
	}

	return rdb, teardown
}

func TestTokenRevocationRepository(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewTokenRevocationRepository(rdb)
	ctx := context.Background()

	t.Run("RevokeAndCheck", func(t *testing.T) {
		assert.NoError(t, repo.Revoke(ctx, "some.jwt.token", time.Hour))

		revoked, err := repo.IsRevoked(ctx, "some.jwt.token")
		assert.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("UnknownTokenNotRevoked", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "never.seen.token")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("ExpiredTokenSkipsStore", func(t *testing.T) {
		assert.NoError(t, repo.Revoke(ctx, "already.expired.token", -time.Minute))

		revoked, err := repo.IsRevoked(ctx, "already.expired.token")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}
