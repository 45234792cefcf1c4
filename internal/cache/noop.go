package cache

import (
	"context"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"
)

// Noop is used when caching is disabled. Every Get is a miss.
type Noop struct{}

func (Noop) Get(context.Context, string) (domain.Chat, error) {
	return domain.Chat{}, ErrCacheMiss
}

func (Noop) Set(context.Context, domain.Chat) error {
	return nil
}

func (Noop) Delete(context.Context, ...string) error {
	return nil
}
