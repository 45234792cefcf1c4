package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	for _, env := range []string{"production", "staging", "development", ""} {
		t.Run(env, func(t *testing.T) {
			require.NoError(t, Init(env, "warn"))
			assert.Equal(t, zapcore.WarnLevel, Level())
			assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
			assert.True(t, zap.L().Core().Enabled(zapcore.ErrorLevel))
		})
	}
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, Init("development", "info"))
	assert.False(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, SetLevel("debug"))
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zapcore.InfoLevel, Level())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zapcore.InfoLevel, Level())
}
