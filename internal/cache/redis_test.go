package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/config"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"
)

func newRedisConfig(t *testing.T) *config.RedisConfig {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	pool.MaxWait = time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	conf := &config.RedisConfig{
		Address: fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp")),
	}

	err = pool.Retry(func() error {
		c, err := NewRedisChatCache(context.Background(), conf, "ready", time.Second)
		if err != nil {
			return err
		}

		return c.Close()
	})
	require.NoError(t, err)

	return conf
}

func TestRedisChatCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewRedisChatCache(ctx, newRedisConfig(t), "chat", time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	chat := domain.Chat{ID: "0123456789abcdef01234567", Username: "alice", Text: "hi", Timeout: 5, ExpirationDate: 5000}

	_, err = c.Get(ctx, chat.ID)
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, chat))

	got, err := c.Get(ctx, chat.ID)
	require.NoError(t, err)
	assert.Equal(t, chat, got)

	require.NoError(t, c.Delete(ctx, chat.ID, "fedcba9876543210fedcba98"))

	_, err = c.Get(ctx, chat.ID)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisChatCache_BuildKey(t *testing.T) {
	c := &RedisChatCache{prefix: "chat"}
	assert.Equal(t, "chat:abc", c.BuildKey("abc"))
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Noop

	assert.NoError(t, c.Set(ctx, domain.Chat{ID: "x"}))
	assert.NoError(t, c.Delete(ctx, "x"))

	_, err := c.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
