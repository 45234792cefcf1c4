package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/cache"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/config"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/db"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/repository"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/repository/dao"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/service"
)

// openChatStore connects the configured backend. The returned func releases it.
func openChatStore(ctx context.Context, conf *config.StoreConfig) (repository.ChatDAO, func(), error) {
	switch conf.Driver {
	case config.DriverMongo:
		client, err := db.OpenMongo(ctx, conf.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("db.OpenMongo -> %w", err)
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				zap.L().Warn("failed to disconnect from mongo", zap.Error(err))
			}
		}

		chatDAO := dao.NewMongoChatDAO(client.Database(conf.Mongo.Database).Collection(conf.Mongo.Collection))
		if err = chatDAO.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("chatDAO.EnsureIndexes -> %w", err)
		}

		return chatDAO, closeFn, nil
	default:
		gormDB, err := db.OpenSQL(conf.Driver, conf.SQL)
		if err != nil {
			return nil, nil, fmt.Errorf("db.OpenSQL -> %w", err)
		}
		closeFn := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}

		if err = dao.InitTables(gormDB); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("dao.InitTables -> %w", err)
		}

		return dao.NewGormChatDAO(gormDB), closeFn, nil
	}
}

// openChatCache returns a nil cache when caching is disabled.
func openChatCache(ctx context.Context, conf *config.AppConfig) (service.ChatCache, func(), error) {
	if !conf.Cache.Enabled {
		return nil, func() {}, nil
	}

	c, err := cache.NewRedisChatCache(ctx, conf.Redis, conf.Cache.Prefix, conf.Cache.TTL)
	if err != nil {
		return nil, nil, fmt.Errorf("cache.NewRedisChatCache -> %w", err)
	}

	return c, func() { _ = c.Close() }, nil
}
