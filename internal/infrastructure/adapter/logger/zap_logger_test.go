package logger

import (
	"testing"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(observed), core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("shown", map[string]any{"userId": 3})
	log.Warn("warned", nil)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, int64(3), entry.ContextMap()["userId"])

	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	log.Info("dropped", nil)
	log.Error("failed", map[string]any{"error": "boom"})

	require.Equal(t, 3, logs.Len())
	assert.Equal(t, "failed", logs.All()[2].Message)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warning"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("nonsense"))
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelWarn)

	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.NoError(t, log.Flush())
}
