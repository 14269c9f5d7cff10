//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init("info", false) })

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug level", level: "debug", want: zerolog.DebugLevel},
		{name: "info level", level: "info", want: zerolog.InfoLevel},
		{name: "warn level", level: "warn", want: zerolog.WarnLevel},
		{name: "warning alias", level: "WARNING", want: zerolog.WarnLevel},
		{name: "error level", level: "error", want: zerolog.ErrorLevel},
		{name: "invalid level defaults to info", level: "invalid", want: zerolog.InfoLevel},
		{name: "empty level defaults to info", level: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

// capture points the global logger at a buffer and decodes the last entry.
func capture(t *testing.T) (*bytes.Buffer, func() map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	InitWithWriter("debug", false, &buf)
	t.Cleanup(func() { Init("info", false) })

	return &buf, func() map[string]any {
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		var entry map[string]any
		require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
		return entry
	}
}

func TestLogger_TagsService(t *testing.T) {
	_, last := capture(t)

	l := Logger()
	l.Info().Msg("ready")

	entry := last()
	assert.Equal(t, ServiceName, entry["service"])
	assert.Equal(t, "ready", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestComponent(t *testing.T) {
	_, last := capture(t)

	l := Component("checkout")
	l.Warn().Str("reference", "abc").Msg("slow write")

	entry := last()
	assert.Equal(t, "checkout", entry["component"])
	assert.Equal(t, "abc", entry["reference"])
	assert.Equal(t, "warn", entry["level"])
}

func TestWithFields(t *testing.T) {
	_, last := capture(t)

	l := WithFields(map[string]any{"store": "main", "items": 3})
	l.Debug().Msg("priced")

	entry := last()
	assert.Equal(t, "main", entry["store"])
	assert.Equal(t, float64(3), entry["items"])
}

func TestInitWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", true, &buf)
	t.Cleanup(func() { Init("info", false) })

	l := Logger()
	l.Info().Msg("console")

	assert.Contains(t, buf.String(), "console")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "pretty output is not JSON")
}
