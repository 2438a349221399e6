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
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{" info ", InfoLevel},
		{"warning", WarnLevel},
		{"WARN", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []Entry {
	t.Helper()
	var out []Entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e Entry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

func TestJSONLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, WarnLevel)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "e", entries[1].Message)
}

func TestJSONLogger_FieldsAndWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, DebugLevel)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	child := l.With(Component("build"), BuildID("abc"))
	child.Info("puzzle encoded", Path("plain/a.txt"), Bytes(5), Error(errors.New("boom")))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "2024-01-02T03:04:05Z", e.Time)
	assert.Equal(t, "build", e.Fields["component"])
	assert.Equal(t, "abc", e.Fields["build_id"])
	assert.Equal(t, "plain/a.txt", e.Fields["path"])
	assert.Equal(t, float64(5), e.Fields["bytes"])
	assert.Equal(t, "boom", e.Fields["error"])
}

func TestJSONLogger_NoFieldsOmitsMap(t *testing.T) {
	var buf bytes.Buffer
	NewJSONLogger(&buf, InfoLevel).Info("plain")
	assert.NotContains(t, buf.String(), "fields")
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, InfoLevel)

	StartTimer(l, "build", Count(3)).End(Bytes(10))
	StartTimer(l, "build").EndError(errors.New("bad"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Contains(t, entries[0].Fields, "latency")
	assert.Equal(t, float64(3), entries[0].Fields["count"])
	assert.Equal(t, "ERROR", entries[1].Level)
	assert.Equal(t, "bad", entries[1].Fields["error"])
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Info("ignored")
	assert.Equal(t, l, l.With(Count(1)))
}
