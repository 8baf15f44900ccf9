package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/validated-entities/internal/platform/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level      string
		emitted    slog.Level
		suppressed slog.Level
	}{
		{level: "debug", emitted: slog.LevelDebug, suppressed: slog.LevelDebug - 1},
		{level: "DEBUG", emitted: slog.LevelDebug, suppressed: slog.LevelDebug - 1},
		{level: "info", emitted: slog.LevelInfo, suppressed: slog.LevelDebug},
		{level: "warn", emitted: slog.LevelWarn, suppressed: slog.LevelInfo},
		{level: "error", emitted: slog.LevelError, suppressed: slog.LevelWarn},
		{level: "verbose", emitted: slog.LevelInfo, suppressed: slog.LevelDebug},
		{level: "", emitted: slog.LevelInfo, suppressed: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tt.level, "json", &bytes.Buffer{})
			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tt.emitted))
			assert.False(t, logger.Enabled(ctx, tt.suppressed))
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"msg":"hello"`},
		{format: "text", want: "msg=hello"},
		{format: "xml", want: `"msg":"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debug, info bytes.Buffer
	logging.New("debug", "json", &debug).Info("x")
	logging.New("info", "json", &info).Info("x")

	assert.Contains(t, debug.String(), `"source"`)
	assert.NotContains(t, info.String(), `"source"`)
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})

	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	ctx := logging.WithLogger(context.Background(), first)
	assert.Same(t, first, logging.FromContext(ctx))

	ctx = logging.WithLogger(ctx, second)
	assert.Same(t, second, logging.FromContext(ctx))
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization key", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "password key", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "prefixed key", attr: slog.String("secret_key", "s3cr3t"), secret: "s3cr3t"},
		{name: "bearer value", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "phone field", attr: slog.String("phone", "+7-123-456-78-90"), secret: "+7-123-456-78-90"},
		{name: "email field", attr: slog.String("email", "ivan@example.com"), secret: "ivan@example.com"},
		{
			name:   "email inside message",
			attr:   slog.String("detail", `invalid value for "workEmail": anna@example.org`),
			secret: "anna@example.org",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			assert.NotContains(t, buf.String(), tt.secret)
			assert.Contains(t, buf.String(), "[REDACTED]")
		})
	}
}

func TestNew_KeepsOrdinaryAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("rejected",
		slog.String("field", "email"),
		slog.String("rule", "phone"),
		slog.String("path", "/api/v1/types/user/entities"),
		slog.String("version", "1.2.3"),
	)

	out := buf.String()
	assert.Contains(t, out, `"field":"email"`)
	assert.Contains(t, out, `"rule":"phone"`)
	assert.Contains(t, out, "/api/v1/types/user/entities")
	assert.Contains(t, out, `"version":"1.2.3"`)
}

func TestIsSensitiveHeader(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"Authorization", "COOKIE", "x-api-key"} {
		assert.True(t, logging.IsSensitiveHeader(h), h)
	}
	for _, h := range []string{"Content-Type", "X-Request-ID", ""} {
		assert.False(t, logging.IsSensitiveHeader(h), h)
	}
}
