package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trierouter/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with attrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "routematch")),
		)

		log.Info("route registered", logger.Component("router"), logger.Error(nil))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "route registered", rec["msg"])
		assert.Equal(t, "router", rec["component"])
		assert.Equal(t, "routematch", rec["service"])
		assert.NotContains(t, rec, "error")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithLevel(slog.LevelWarn), logger.WithOutput(&buf))

		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "msg=kept")
	})

	t.Run("development preset", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("routematch"), logger.WithOutput(&buf))

		log.Debug("visible")
		out := buf.String()
		assert.Contains(t, out, "msg=visible")
		assert.Contains(t, out, "service=routematch")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production preset", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("routematch"), logger.WithOutput(&buf))

		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("shown")
		assert.Contains(t, buf.String(), `"env":"production"`)
	})

	t.Run("format by name", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithFormat("JSON"), logger.WithOutput(&buf))
		log.Info("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
