package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/config"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// RedisChatCache keeps single chats as JSON under "<prefix>:<id>".
type RedisChatCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisChatCache(ctx context.Context, conf *config.RedisConfig, prefix string, ttl time.Duration) (*RedisChatCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Address,
		Password: conf.Password,
		DB:       conf.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("client.Ping -> %w", err)
	}

	return &RedisChatCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

func (c *RedisChatCache) BuildKey(id string) string {
	return c.prefix + ":" + id
}

func (c *RedisChatCache) Get(ctx context.Context, id string) (domain.Chat, error) {
	data, err := c.client.Get(ctx, c.BuildKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Chat{}, ErrCacheMiss
		}

		return domain.Chat{}, fmt.Errorf("c.client.Get -> %w", err)
	}

	var chat domain.Chat
	if err = json.Unmarshal(data, &chat); err != nil {
		return domain.Chat{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return chat, nil
}

func (c *RedisChatCache) Set(ctx context.Context, chat domain.Chat) error {
	data, err := json.Marshal(chat)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = c.client.Set(ctx, c.BuildKey(chat.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("c.client.Set -> %w", err)
	}

	return nil
}

func (c *RedisChatCache) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, c.BuildKey(id))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("c.client.Del -> %w", err)
	}

	return nil
}

func (c *RedisChatCache) Close() error {
	return c.client.Close()
}
