package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jmgilman/go/collection/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "debug", want: LogLevelDebug},
		{in: "INFO", want: LogLevelInfo},
		{in: "", want: LogLevelInfo},
		{in: " warn ", want: LogLevelWarn},
		{in: "warning", want: LogLevelWarn},
		{in: "error", want: LogLevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "debug", LogLevelDebug.String())
	assert.Equal(t, "warn", LogLevelWarn.String())
	assert.Equal(t, "unknown", LogLevel(42).String())
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: LogLevelWarn})

	logger.Info("hidden")
	logger.Warn("shown", "root", "/srv")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "root=/srv")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: LogLevelDebug, JSON: true})

	logger.Debug("scanning collection", "entries", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "scanning collection", record["msg"])
	assert.Equal(t, float64(3), record["entries"])
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	assert.False(t, logger.Enabled(t.Context(), 0))
	logger.Error("nothing happens")
}

func TestDefaultLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()
	assert.Equal(t, LogLevelWarn, cfg.Level)
	assert.False(t, cfg.JSON)
}
