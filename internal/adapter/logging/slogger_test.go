package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(NewHandler(&buf, "json", "info")))
	ctx := context.Background()

	l.Debug(ctx, "hidden")
	l.Info(ctx, "lesson finished", "lesson", "chain")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "lesson finished", entry["msg"])
	assert.Equal(t, "chain", entry["lesson"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestSLoggerTextAndNil(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(NewHandler(&buf, "text", "debug")))
	l.Debug(context.Background(), "visible")
	assert.Contains(t, buf.String(), "msg=visible")

	New(nil).Error(context.Background(), "no panic")
}
