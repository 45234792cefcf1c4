package dao

import (
	"context"
	"errors"
)

var (
	ErrChatNotFound = errors.New("chat not found")
	ErrChatExists   = errors.New("chat already exists")
	ErrInvalidChat  = errors.New("chat is missing required fields")
)

// Chat is the stored record of a chat message. The id is the hex form of an
// ObjectID and is assigned on insert.
type Chat struct {
	ID             string `gorm:"primaryKey;size:24"`
	Username       string `gorm:"not null;index"`
	Text           string `gorm:"not null"`
	Timeout        int64  `gorm:"not null;default:60"`
	ExpirationDate int64  `gorm:"not null"`
}

func (Chat) TableName() string { return "chats" }

func (c Chat) validate() error {
	if c.Username == "" || c.Text == "" || c.ExpirationDate == 0 {
		return ErrInvalidChat
	}
	return nil
}

// ChatStore is the set of chat operations available inside a Scope.
type ChatStore interface {
	Insert(ctx context.Context, chat Chat) (Chat, error)
	FindByID(ctx context.Context, id string) (Chat, error)
	FindByUsername(ctx context.Context, username string) ([]Chat, error)
	UpdateExpirationByUsername(ctx context.Context, username string, expirationDate int64) (int64, error)
}
