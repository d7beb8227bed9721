package logger_test

import (
	"agenthub/pkg/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{name: "development", environment: logger.DevelopmentEnvironment},
		{name: "production", environment: logger.ProductionEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetPrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom, _ := zap.NewDevelopment()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFieldsAttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("agentID", "a-1"), zap.Int("attempt", 2))
	logger.Info(ctx, "running agent")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "running agent", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "a-1", fields["agentID"])
	require.EqualValues(t, 2, fields["attempt"])
}

func TestSlogBridge(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("job completed", "kind", "AgentRunJob")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "job completed", entries[0].Message)
	require.Equal(t, "AgentRunJob", entries[0].ContextMap()["kind"])
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, _ := cfg.Build()
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)))
}

func TestLoggingFunctions(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message", zap.String("key", "value"))
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
		logger.Error(ctx, "error message", zap.String("key", "value"))
	})
}
