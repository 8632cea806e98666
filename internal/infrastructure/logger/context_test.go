package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestWithContext(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	ctx := WithContext(context.Background(), logger)
	retrieved := FromContext(ctx)

	assert.Equal(t, logger, retrieved)
}

func TestFromContext_NotFound(t *testing.T) {
	retrieved := FromContext(context.Background())

	// Should return a no-op logger, not nil
	assert.NotNil(t, retrieved)
}

func TestWithRequestID(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")

	assert.NotNil(t, enriched)
	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Equal(t, enriched, FromContext(ctx))
}

func TestWithUserID(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	ctx, enriched := WithUserID(context.Background(), logger, "user-789")

	assert.NotNil(t, enriched)
	assert.Equal(t, "user-789", GetUserID(ctx))
}

func TestGetRequestID_NotFound(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestGetUserID_NotFound(t *testing.T) {
	assert.Empty(t, GetUserID(context.Background()))
}

func TestContextChaining(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	ctx := context.Background()
	ctx, _ = WithRequestID(ctx, logger, "req-1")
	ctx, _ = WithUserID(ctx, FromContext(ctx), "user-1")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))
}

func TestFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoggerKey, "not-a-logger")

	retrieved := FromContext(ctx)

	// Should return a no-op logger for wrong-typed values
	assert.NotNil(t, retrieved)
}

func TestL_ReturnsContextLogger(t *testing.T) {
	cl := L(context.Background())

	assert.NotNil(t, cl)
	// Logging on a context without a logger must not panic
	cl.Info("test message")
}

func TestL_WithLoggerInContext(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)
	ctx := WithContext(context.Background(), logger)

	cl := L(ctx)

	assert.NotNil(t, cl)
	assert.Equal(t, logger, cl.logger)
}

func TestWithLogger_UsesProvidedLogger(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	cl := WithLogger(context.Background(), logger)

	assert.Equal(t, logger, cl.logger)
}

func TestContextLogger_EnrichesWithContextFields(t *testing.T) {
	var buf bytes.Buffer
	encoderConfig := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	logger := zap.New(core)

	ctx := context.Background()
	ctx, _ = WithRequestID(ctx, logger, "req-enrich")
	ctx = context.WithValue(ctx, UserIDKey, "user-enrich")

	WithLogger(ctx, logger).Info("enriched entry")

	output := buf.String()
	assert.Contains(t, output, "req-enrich")
	assert.Contains(t, output, "user-enrich")
	assert.Contains(t, output, "enriched entry")
}

func TestContextLogger_NilLogger(t *testing.T) {
	cl := &ContextLogger{ctx: context.Background(), logger: nil}

	// Must not panic with a nil logger
	cl.Info("should not panic")
	cl.Debug("should not panic")
	cl.Warn("should not panic")
	cl.Error("should not panic")
}

func TestContextLogger_WithChaining(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	cl := WithLogger(context.Background(), logger).
		With(zap.String("component", "test")).
		With(zap.String("operation", "chain"))

	assert.NotNil(t, cl)
	cl.Info("chained fields")
}

func TestContextLogger_Zap(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	zl := WithLogger(context.Background(), logger).Zap()

	assert.NotNil(t, zl)
}
