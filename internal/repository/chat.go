package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/repository/dao"
)

var (
	ErrChatNotFound = dao.ErrChatNotFound
	ErrChatExists   = dao.ErrChatExists
	ErrInvalidChat  = dao.ErrInvalidChat

	ErrRetrieveChats = errors.New("could not retrieve chats")
	ErrUpdateChats   = errors.New("could not update chats")
)

type ChatDAO interface {
	Scope(ctx context.Context, fn func(ctx context.Context, store dao.ChatStore) error) error
}

type ChatRepository struct {
	dao ChatDAO
}

func NewChatRepository(dao ChatDAO) *ChatRepository {
	return &ChatRepository{
		dao: dao,
	}
}

func (r *ChatRepository) Create(ctx context.Context, chat domain.Chat) (domain.Chat, error) {
	var created dao.Chat
	err := r.dao.Scope(ctx, func(ctx context.Context, store dao.ChatStore) error {
		var err error
		created, err = store.Insert(ctx, r.domainToDao(chat))

		return err
	})
	if err != nil {
		return domain.Chat{}, fmt.Errorf("r.dao.Scope -> store.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ChatRepository) FindByID(ctx context.Context, id string) (domain.Chat, error) {
	var found dao.Chat
	err := r.dao.Scope(ctx, func(ctx context.Context, store dao.ChatStore) error {
		var err error
		found, err = store.FindByID(ctx, id)

		return err
	})
	if err != nil {
		return domain.Chat{}, fmt.Errorf("r.dao.Scope -> store.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// ListAndExpireByUsername returns every chat stored for username and then sets
// their expiration date to expirationDate. The chats are returned as they were
// before the update. When only the update fails, the chats are returned along
// with an error wrapping ErrUpdateChats.
func (r *ChatRepository) ListAndExpireByUsername(ctx context.Context, username string, expirationDate int64) ([]domain.Chat, error) {
	var found []dao.Chat
	var updateErr error
	err := r.dao.Scope(ctx, func(ctx context.Context, store dao.ChatStore) error {
		var err error
		found, err = store.FindByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("%w: store.FindByUsername -> %w", ErrRetrieveChats, err)
		}

		if len(found) == 0 {
			return nil
		}

		if _, err = store.UpdateExpirationByUsername(ctx, username, expirationDate); err != nil {
			updateErr = fmt.Errorf("%w: store.UpdateExpirationByUsername -> %w", ErrUpdateChats, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.Scope -> %w", err)
	}

	chats := make([]domain.Chat, 0, len(found))
	for _, c := range found {
		chats = append(chats, r.daoToDomain(c))
	}

	return chats, updateErr
}

func (r *ChatRepository) domainToDao(c domain.Chat) dao.Chat {
	return dao.Chat{
		ID:             c.ID,
		Username:       c.Username,
		Text:           c.Text,
		Timeout:        c.Timeout,
		ExpirationDate: c.ExpirationDate,
	}
}

func (r *ChatRepository) daoToDomain(c dao.Chat) domain.Chat {
	return domain.Chat{
		ID:             c.ID,
		Username:       c.Username,
		Text:           c.Text,
		Timeout:        c.Timeout,
		ExpirationDate: c.ExpirationDate,
	}
}
