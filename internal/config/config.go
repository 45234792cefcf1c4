package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type AppConfig struct {
	API   *APIConfig   `mapstructure:"api"`
	Gin   *GinConfig   `mapstructure:"gin"`
	Store *StoreConfig `mapstructure:"store"`
	Redis *RedisConfig `mapstructure:"redis"`
	Cache *CacheConfig `mapstructure:"cache"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	LogLevel           string   `mapstructure:"log_level"`

	// LegacyStatus keeps the historical status codes: 201 for every success,
	// 500 for a malformed body and 501 for failed reads.
	LegacyStatus bool `mapstructure:"legacy_status"`
	// StrictChatID requires the whole id to be 24 hex characters. When false an
	// id only has to contain such a run.
	StrictChatID bool `mapstructure:"strict_chat_id"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type StoreConfig struct {
	Driver string       `mapstructure:"driver"`
	Mongo  *MongoConfig `mapstructure:"mongo"`
	SQL    *SQLConfig   `mapstructure:"sql"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type SQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Prefix  string        `mapstructure:"prefix"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// Load reads the config file at path, if present, and applies environment
// overrides on top of the defaults.
func Load(path string) (*AppConfig, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return decode(v)
}

// Watch calls fn with the reloaded config every time the file at path changes.
// Reloads that fail to decode or validate are passed to onErr and skipped.
func Watch(path string, fn func(*AppConfig), onErr func(error)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		conf, err := decode(v)
		if err != nil {
			onErr(fmt.Errorf("config.Watch %v -> %w", e.Name, err))
			return
		}

		fn(conf)
	})
	v.WatchConfig()

	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api.port", "API_PORT", "PORT")
	_ = v.BindEnv("store.mongo.uri", "STORE_MONGO_URI", "MONGO_URI", "MONGODB_URI")
	_ = v.BindEnv("store.sql.dsn", "STORE_SQL_DSN", "DATABASE_URL")

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"*"})
	v.SetDefault("api.log_level", "info")
	v.SetDefault("api.legacy_status", true)
	v.SetDefault("api.strict_chat_id", true)

	v.SetDefault("gin.mode", "release")

	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("store.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("store.mongo.database", "ephemeral_chat")
	v.SetDefault("store.mongo.collection", "chats")
	v.SetDefault("store.mongo.connect_timeout", 10*time.Second)
	v.SetDefault("store.sql.dsn", "")

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.prefix", "chat")
	v.SetDefault("cache.ttl", 30*time.Second)
}

func decode(v *viper.Viper) (*AppConfig, error) {
	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	return &conf, nil
}

func (c *AppConfig) Validate() error {
	if c.API == nil || c.Gin == nil || c.Store == nil || c.Store.Mongo == nil || c.Store.SQL == nil ||
		c.Redis == nil || c.Cache == nil {
		return errors.New("missing config section")
	}

	err := validation.ValidateStruct(c.API,
		validation.Field(&c.API.Port, validation.Required),
		validation.Field(&c.API.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	err = validation.ValidateStruct(c.Store,
		validation.Field(&c.Store.Driver, validation.Required, validation.In(DriverMongo, DriverPostgres, DriverSQLite)),
	)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	switch c.Store.Driver {
	case DriverMongo:
		err = validation.ValidateStruct(c.Store.Mongo,
			validation.Field(&c.Store.Mongo.URI, validation.Required),
			validation.Field(&c.Store.Mongo.Database, validation.Required),
			validation.Field(&c.Store.Mongo.Collection, validation.Required),
		)
	default:
		err = validation.ValidateStruct(c.Store.SQL,
			validation.Field(&c.Store.SQL.DSN, validation.Required),
		)
	}
	if err != nil {
		return fmt.Errorf("store.%v: %w", c.Store.Driver, err)
	}

	if c.Cache.Enabled {
		err = validation.ValidateStruct(c.Redis,
			validation.Field(&c.Redis.Address, validation.Required),
		)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}

	return nil
}
