package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

type GormChatDAO struct {
	db *gorm.DB
}

func NewGormChatDAO(db *gorm.DB) *GormChatDAO {
	return &GormChatDAO{
		db: db,
	}
}

// Scope pins one pooled connection for the duration of fn.
func (d *GormChatDAO) Scope(ctx context.Context, fn func(ctx context.Context, store ChatStore) error) error {
	return d.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(ctx, &GormChatDAO{db: conn})
	})
}

func (d *GormChatDAO) Insert(ctx context.Context, chat Chat) (Chat, error) {
	if err := chat.validate(); err != nil {
		return Chat{}, err
	}

	chat.ID = primitive.NewObjectID().Hex()

	result := d.db.WithContext(ctx).Create(&chat)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Chat{}, ErrChatExists
		}

		return Chat{}, result.Error
	}

	return chat, nil
}

func (d *GormChatDAO) FindByID(ctx context.Context, id string) (Chat, error) {
	var chat Chat

	result := d.db.WithContext(ctx).First(&chat, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Chat{}, ErrChatNotFound
		}

		return Chat{}, result.Error
	}

	return chat, nil
}

func (d *GormChatDAO) FindByUsername(ctx context.Context, username string) ([]Chat, error) {
	chats := []Chat{}

	result := d.db.WithContext(ctx).Where("username = ?", username).Find(&chats)
	if result.Error != nil {
		return nil, result.Error
	}

	return chats, nil
}

func (d *GormChatDAO) UpdateExpirationByUsername(ctx context.Context, username string, expirationDate int64) (int64, error) {
	result := d.db.WithContext(ctx).
		Model(&Chat{}).
		Where("username = ?", username).
		Update("expiration_date", expirationDate)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
