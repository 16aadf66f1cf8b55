package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lld/internal/adapter/logging"
	"lld/internal/domain/model"
)

func sampleDigest() model.Digest {
	return model.Digest{
		Title:     "LLD lessons",
		StartedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Transcripts: []model.Transcript{
			{Lesson: model.Lesson{Key: "chain", Title: "ATM dispenser", Pattern: "Chain of Responsibility"}, Output: "dispensed 2 x 500\n"},
			{Lesson: model.Lesson{Key: "proxy", Title: "Premium reader", Pattern: "Proxy"}, Err: errors.New("boom")},
		},
	}
}

func TestConsolePublish(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConsole(&buf).Publish(context.Background(), sampleDigest()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# LLD lessons\n"))
	assert.Contains(t, out, "== ATM dispenser (Chain of Responsibility) ==\ndispensed 2 x 500\n")
	assert.Contains(t, out, "!! lesson failed: boom")
	assert.Contains(t, out, "2 lessons, 1 failed")
}

func TestDiscordWebhookPublish(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := NewDiscordWebhook(srv.URL, time.Second, logging.Discard())
	require.NoError(t, w.Publish(context.Background(), sampleDigest()))

	embeds := got["embeds"].([]any)
	require.Len(t, embeds, 1)
	embed := embeds[0].(map[string]any)
	assert.Equal(t, "LLD lessons", embed["title"])
	assert.Equal(t, "2 lessons run, 1 failed.", embed["description"])
	assert.EqualValues(t, 0xED4245, embed["color"])

	fields := embed["fields"].([]any)
	require.Len(t, fields, 2)
	assert.Equal(t, "Proxy · Premium reader", fields[1].(map[string]any)["name"])
	assert.Contains(t, fields[1].(map[string]any)["value"], "error: boom")
}

func TestDiscordWebhookErrors(t *testing.T) {
	err := NewDiscordWebhook("", time.Second, logging.Discard()).Publish(context.Background(), sampleDigest())
	require.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err = NewDiscordWebhook(srv.URL, time.Second, logging.Discard()).Publish(context.Background(), sampleDigest())
	assert.ErrorContains(t, err, "status 429")
}

type recordingPublisher struct {
	calls int
	err   error
}

func (r *recordingPublisher) Publish(context.Context, model.Digest) error {
	r.calls++
	return r.err
}

func TestCompositeTriesAllAndReturnsFirstError(t *testing.T) {
	first := errors.New("first")
	a := &recordingPublisher{err: first}
	b := &recordingPublisher{err: errors.New("second")}
	c := &recordingPublisher{}

	comp := NewComposite(logging.Discard(), a, nil, b, c)
	assert.Equal(t, 3, comp.Len())

	err := comp.Publish(context.Background(), sampleDigest())
	assert.ErrorIs(t, err, first)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 1, c.calls)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghijk", 7))
	assert.Equal(t, "ab·c...", truncate("ab·cdefgh", 7))
	assert.True(t, utf8.ValidString(truncate(strings.Repeat("·", 300), 256)))
}

func TestFenceKeepsClosingFence(t *testing.T) {
	out := fence(strings.Repeat("é", 2000), 1024)
	assert.True(t, strings.HasPrefix(out, "```\n"))
	assert.True(t, strings.HasSuffix(out, "...\n```"))
	assert.Equal(t, 1024, utf8.RuneCountInString(out))
	assert.True(t, utf8.ValidString(out))

	assert.Equal(t, "```\nok\n```", fence("ok", 1024))
}
