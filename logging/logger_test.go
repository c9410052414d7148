package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"":        LogLevelInfo,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewSlogLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(LogLevelInfo, "json", &buf)
	l.Debug("hidden")
	l.Info("agent.step.done", "agent", "Assistant")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "agent.step.done", rec["msg"])
	assert.Equal(t, "Assistant", rec["agent"])
}

func TestNewSlogLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(LogLevelDebug, "text", &buf)
	l.Debug("tool.call.start", "tool", "greeting_tool")
	assert.Contains(t, buf.String(), "tool=greeting_tool")
}

func TestLogToolCall(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(LogLevelInfo, "text", &buf)

	LogToolCall(l, "disk_usage", 5*time.Millisecond, nil)
	assert.Contains(t, buf.String(), "tool.call.success")

	buf.Reset()
	LogToolCall(l, "disk_usage", time.Millisecond, errors.New("statfs failed"), "turn_id", "t1")
	out := buf.String()
	assert.Contains(t, out, "tool.call.error")
	assert.Contains(t, out, "statfs failed")
	assert.Contains(t, out, "turn_id=t1")
}

func TestOrNoOp(t *testing.T) {
	assert.Equal(t, NoOpLogger{}, OrNoOp(nil))
	l := NewDefaultSlogLogger()
	assert.Same(t, l, OrNoOp(l))
}
