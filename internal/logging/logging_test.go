package logging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	require.NotNil(t, logger)
	require.NotNil(t, logger.logFn)
	require.NotNil(t, logger.progress)
}

func TestLogger_Log(t *testing.T) {
	var capturedMsg string
	var capturedArgs []any

	logger := NewLogger().WithLogFn(func(ctx context.Context, msg string, args ...any) {
		capturedMsg = msg
		capturedArgs = args
	})
	logger.Log(context.Background(), "tokenized", "tokens", 42)

	assert.Equal(t, "tokenized", capturedMsg)
	require.Len(t, capturedArgs, 4)
	assert.Equal(t, "timestamp", capturedArgs[0])
	_, ok := capturedArgs[1].(time.Time)
	assert.True(t, ok, "second arg should be a time.Time")
	assert.Equal(t, "tokens", capturedArgs[2])
	assert.Equal(t, 42, capturedArgs[3])
}

func TestLogger_Progress(t *testing.T) {
	var calls int
	logger := NewLogger().
		WithProgressInterval(time.Hour).
		WithLogFn(func(ctx context.Context, msg string, args ...any) { calls++ })

	for i := 0; i < 10; i++ {
		logger.Progress(context.Background(), "progress", "tokens", i)
	}
	assert.Equal(t, 1, calls)
}

func TestNewLoggerWithBuild(t *testing.T) {
	t.Run("with build version", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		logger := NewLoggerWithBuild(zap.New(core), "v1.2.3")
		logger.Info("hello")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "v1.2.3", entries[0].ContextMap()["serviceBuild"])
	})

	t.Run("without build version", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		logger := NewLoggerWithBuild(zap.New(core), "")
		logger.Info("hello")

		entries := logs.All()
		require.Len(t, entries, 1)
		_, found := entries[0].ContextMap()["serviceBuild"]
		assert.False(t, found)
	})
}

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(true, "")
	require.NoError(t, err)
	assert.True(t, logger.V(1).Enabled())

	logger, err = NewZapLogger(false, "dev")
	require.NoError(t, err)
	assert.False(t, logger.V(1).Enabled())
}
