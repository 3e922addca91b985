package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func swap(t *testing.T, l *zap.Logger) {
	t.Helper()
	original := log
	Set(l)
	t.Cleanup(func() { Set(original) })
}

func TestInit(t *testing.T) {
	original := log
	defer Set(original)

	t.Run("Production", func(t *testing.T) {
		Init("production", "")
		assert.NotNil(t, log)
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("Development", func(t *testing.T) {
		Init("development", "")
		assert.NotNil(t, log)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("LevelOverride", func(t *testing.T) {
		Init("development", "warn")
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("UnknownLevelIgnored", func(t *testing.T) {
		Init("production", "loud")
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	})
}

func TestL(t *testing.T) {
	swap(t, nil)
	t.Setenv("APP_ENV", "test")
	assert.False(t, Configured())

	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log)
	assert.True(t, Configured())
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()
	reqID := "test-request-id-123"

	t.Run("WithRequestID", func(t *testing.T) {
		newCtx := WithRequestID(ctx, reqID)
		assert.NotEqual(t, ctx, newCtx)
		assert.Equal(t, reqID, newCtx.Value(requestIDKey))
	})

	t.Run("RequestIDFrom", func(t *testing.T) {
		assert.Equal(t, reqID, RequestIDFrom(WithRequestID(ctx, reqID)))
		assert.Equal(t, "", RequestIDFrom(ctx))
	})

	t.Run("EnsureRequestID keeps existing", func(t *testing.T) {
		withID := WithRequestID(ctx, reqID)
		got, id := EnsureRequestID(withID)
		assert.Equal(t, reqID, id)
		assert.Equal(t, withID, got)
	})

	t.Run("EnsureRequestID generates", func(t *testing.T) {
		got, id := EnsureRequestID(ctx)
		assert.Len(t, id, 36)
		assert.Equal(t, id, RequestIDFrom(got))

		_, other := EnsureRequestID(ctx)
		assert.NotEqual(t, id, other)
	})
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	swap(t, zap.New(core))

	t.Run("WithRequestID", func(t *testing.T) {
		reqID := "req-abc-123"
		FromCtx(WithRequestID(context.Background(), reqID)).Info("test message with id")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		assert.Equal(t, "test message with id", logs[0].Message)
		assert.Equal(t, reqID, logs[0].ContextMap()["request_id"])
	})

	t.Run("WithoutRequestID", func(t *testing.T) {
		FromCtx(context.Background()).Info("test message without id")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		_, ok := logs[0].ContextMap()["request_id"]
		assert.False(t, ok)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync()
	})
}
