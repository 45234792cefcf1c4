package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevel()

// Init builds the global logger. production and staging get JSON output,
// everything else the human-friendly development encoder.
func Init(environment, logLevel string) error {
	if err := SetLevel(logLevel); err != nil {
		return err
	}

	var conf zap.Config
	switch environment {
	case "production", "staging":
		conf = zap.NewProductionConfig()
	default:
		conf = zap.NewDevelopmentConfig()
	}
	conf.Level = level

	logger, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}

// SetLevel changes the level of the logger built by Init. An empty level means info.
func SetLevel(logLevel string) error {
	if logLevel == "" {
		logLevel = zapcore.InfoLevel.String()
	}

	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("level.UnmarshalText -> %w", err)
	}

	return nil
}

func Level() zapcore.Level {
	return level.Level()
}
