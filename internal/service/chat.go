package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/cache"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/pkg/timefmt"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/repository"
)

var (
	ErrChatNotFound  = repository.ErrChatNotFound
	ErrRetrieveChats = repository.ErrRetrieveChats
	ErrUpdateChats   = repository.ErrUpdateChats

	ErrTimeoutTooLarge = errors.New("timeout exceeds the maximum chat lifetime")
)

const lookupTimeout = 10 * time.Second

type ChatRepository interface {
	Create(ctx context.Context, chat domain.Chat) (domain.Chat, error)
	FindByID(ctx context.Context, id string) (domain.Chat, error)
	ListAndExpireByUsername(ctx context.Context, username string, expirationDate int64) ([]domain.Chat, error)
}

type ChatCache interface {
	Get(ctx context.Context, id string) (domain.Chat, error)
	Set(ctx context.Context, chat domain.Chat) error
	Delete(ctx context.Context, ids ...string) error
}

type ChatService struct {
	repo  ChatRepository
	cache ChatCache
	group singleflight.Group
	now   func() time.Time
}

// NewChatService returns a ChatService. A nil cache disables caching.
func NewChatService(repo ChatRepository, chatCache ChatCache) *ChatService {
	if chatCache == nil {
		chatCache = cache.Noop{}
	}

	return &ChatService{
		repo:  repo,
		cache: chatCache,
		now:   time.Now,
	}
}

// CreateChat stores a new chat that expires timeout seconds from now. A
// timeout of zero or less means domain.DefaultTimeout; one above
// domain.MaxTimeout is rejected.
func (s *ChatService) CreateChat(ctx context.Context, username, text string, timeout int64) (domain.Chat, error) {
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	if timeout > domain.MaxTimeout {
		return domain.Chat{}, ErrTimeoutTooLarge
	}

	now := s.now()
	chat := domain.Chat{
		Username:       username,
		Text:           text,
		Timeout:        timeout,
		ExpirationDate: now.UnixMilli() + timeout*1000,
	}

	created, err := s.repo.Create(ctx, chat)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Debug("chat created",
		zap.String("id", created.ID),
		zap.String("username", created.Username),
		zap.String("expires", timefmt.Expiration(now, timeout)),
		zap.Time("expires_at", created.ExpiresAt()),
	)

	return created, nil
}

// GetChat looks the chat up in the cache first. Concurrent misses for the same
// id share one store lookup.
func (s *ChatService) GetChat(ctx context.Context, id string) (domain.Chat, error) {
	chat, err := s.cache.Get(ctx, id)
	if err == nil {
		return chat, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		zap.L().Warn("chat cache read failed", zap.String("id", id), zap.Error(err))
	}

	v, err, _ := s.group.Do(id, func() (interface{}, error) {
		// The lookup is shared with every caller waiting on id, so one caller
		// going away must not cancel it for the others.
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()

		found, err := s.repo.FindByID(lookupCtx, id)
		if err != nil {
			return domain.Chat{}, err
		}

		if err := s.cache.Set(lookupCtx, found); err != nil {
			zap.L().Warn("chat cache write failed", zap.String("id", id), zap.Error(err))
		}

		return found, nil
	})
	if err != nil {
		return domain.Chat{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	chat = v.(domain.Chat)
	if chat.IsExpired(s.now()) {
		// Expiration is advisory; expired chats are still served.
		zap.L().Debug("serving expired chat", zap.String("id", chat.ID))
	}

	return chat, nil
}

// GetUserChats returns every chat of username and marks all of them as expired
// now. When the retrieval succeeds but the update fails, the error wraps
// ErrUpdateChats; the chats are still evicted from the cache.
func (s *ChatService) GetUserChats(ctx context.Context, username string) ([]domain.Chat, error) {
	expiredAt := s.now().UnixMilli()
	chats, err := s.repo.ListAndExpireByUsername(ctx, username, expiredAt)
	if len(chats) > 0 {
		ids := make([]string, 0, len(chats))
		for _, c := range chats {
			ids = append(ids, c.ID)
		}

		if cacheErr := s.cache.Delete(ctx, ids...); cacheErr != nil {
			zap.L().Warn("chat cache eviction failed", zap.String("username", username), zap.Error(cacheErr))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAndExpireByUsername -> %w", err)
	}

	zap.L().Debug("chats expired",
		zap.String("username", username),
		zap.Int("count", len(chats)),
		zap.String("at", timefmt.FromMillis(expiredAt, time.UTC)),
	)

	return chats, nil
}
