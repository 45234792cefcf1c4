package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/repository/dao"
)

type fakeStore struct {
	chats     map[string]dao.Chat
	nextID    int
	findErr   error
	updateErr error
	scopes    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{chats: map[string]dao.Chat{}}
}

func (f *fakeStore) Scope(ctx context.Context, fn func(ctx context.Context, store dao.ChatStore) error) error {
	f.scopes++
	return fn(ctx, f)
}

func (f *fakeStore) Insert(_ context.Context, chat dao.Chat) (dao.Chat, error) {
	f.nextID++
	chat.ID = string(rune('a' + f.nextID))
	f.chats[chat.ID] = chat
	return chat, nil
}

func (f *fakeStore) FindByID(_ context.Context, id string) (dao.Chat, error) {
	chat, ok := f.chats[id]
	if !ok {
		return dao.Chat{}, dao.ErrChatNotFound
	}
	return chat, nil
}

func (f *fakeStore) FindByUsername(_ context.Context, username string) ([]dao.Chat, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	chats := []dao.Chat{}
	for _, c := range f.chats {
		if c.Username == username {
			chats = append(chats, c)
		}
	}
	return chats, nil
}

func (f *fakeStore) UpdateExpirationByUsername(_ context.Context, username string, exp int64) (int64, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	var n int64
	for id, c := range f.chats {
		if c.Username == username {
			c.ExpirationDate = exp
			f.chats[id] = c
			n++
		}
	}
	return n, nil
}

func TestChatRepository_CreateAndFind(t *testing.T) {
	store := newFakeStore()
	repo := NewChatRepository(store)

	created, err := repo.Create(context.Background(), domain.Chat{Username: "alice", Text: "hi", Timeout: 5, ExpirationDate: 5000})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
	assert.Equal(t, 2, store.scopes)
}

func TestChatRepository_FindByID_NotFound(t *testing.T) {
	repo := NewChatRepository(newFakeStore())

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestChatRepository_ListAndExpireByUsername(t *testing.T) {
	store := newFakeStore()
	repo := NewChatRepository(store)
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		_, err := repo.Create(ctx, domain.Chat{Username: "bob", Text: text, ExpirationDate: 99999})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, domain.Chat{Username: "carol", Text: "other", ExpirationDate: 99999})
	require.NoError(t, err)

	chats, err := repo.ListAndExpireByUsername(ctx, "bob", 1234)
	require.NoError(t, err)
	assert.Len(t, chats, 3)
	for _, c := range chats {
		assert.Equal(t, int64(99999), c.ExpirationDate)
	}

	for _, c := range store.chats {
		if c.Username == "bob" {
			assert.Equal(t, int64(1234), c.ExpirationDate)
		} else {
			assert.Equal(t, int64(99999), c.ExpirationDate)
		}
	}
}

func TestChatRepository_ListAndExpireByUsername_Empty(t *testing.T) {
	repo := NewChatRepository(newFakeStore())

	chats, err := repo.ListAndExpireByUsername(context.Background(), "nobody", 1)
	require.NoError(t, err)
	assert.NotNil(t, chats)
	assert.Empty(t, chats)
}

func TestChatRepository_ListAndExpireByUsername_Errors(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("boom")

	t.Run("retrieve fails", func(t *testing.T) {
		store := newFakeStore()
		store.findErr = storeErr
		repo := NewChatRepository(store)

		chats, err := repo.ListAndExpireByUsername(ctx, "bob", 1)
		assert.Nil(t, chats)
		assert.ErrorIs(t, err, ErrRetrieveChats)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("update fails", func(t *testing.T) {
		store := newFakeStore()
		repo := NewChatRepository(store)
		_, err := repo.Create(ctx, domain.Chat{Username: "bob", Text: "hi", ExpirationDate: 1})
		require.NoError(t, err)
		store.updateErr = storeErr

		chats, err := repo.ListAndExpireByUsername(ctx, "bob", 2)
		assert.Len(t, chats, 1)
		assert.ErrorIs(t, err, ErrUpdateChats)
		assert.NotErrorIs(t, err, ErrRetrieveChats)
	})
}
