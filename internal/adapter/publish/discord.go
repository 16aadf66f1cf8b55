package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
)

// Discord caps an embed at 25 fields.
const maxDiscordFields = 25

// DiscordWebhook posts lesson digests to a Discord webhook.
type DiscordWebhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Publisher = (*DiscordWebhook)(nil)

// NewDiscordWebhook creates a new Discord webhook publisher.
func NewDiscordWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *DiscordWebhook {
	return &DiscordWebhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Publish posts the digest as a single embed, one field per lesson.
func (w *DiscordWebhook) Publish(ctx context.Context, digest model.Digest) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	color := 0x57F287 // green
	if digest.Failures() > 0 {
		color = 0xED4245 // red
	}

	payload := map[string]any{
		"content": "",
		"embeds": []map[string]any{
			{
				"title":       truncate(digest.Title, 256),
				"description": truncate(describe(digest), 4096),
				"fields":      convertFields(digest.Transcripts),
				"timestamp":   digest.StartedAt.UTC().Format(time.RFC3339),
				"color":       color,
				"footer": map[string]string{
					"text": "lld lesson runner",
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	w.logger.Info(ctx, "digest sent to discord", "lessons", len(digest.Transcripts))
	return nil
}

func describe(digest model.Digest) string {
	return fmt.Sprintf("%d lessons run, %d failed.", len(digest.Transcripts), digest.Failures())
}

func convertFields(transcripts []model.Transcript) []map[string]any {
	if len(transcripts) == 0 {
		return nil
	}

	if len(transcripts) > maxDiscordFields {
		transcripts = transcripts[:maxDiscordFields]
	}

	result := make([]map[string]any, 0, len(transcripts))
	for _, t := range transcripts {
		value := t.Output
		if t.Failed() {
			value = "error: " + t.Err.Error()
		}
		if strings.TrimSpace(value) == "" {
			value = "(no output)"
		}
		result = append(result, map[string]any{
			"name":   truncate(fmt.Sprintf("%s · %s", t.Lesson.Pattern, t.Lesson.Title), 256),
			"value":  fence(value, 1024),
			"inline": false,
		})
	}

	return result
}

// fence wraps value in a code block whose total length stays within limit.
func fence(value string, limit int) string {
	const openFence, closeFence = "```\n", "\n```"
	body := truncate(value, limit-utf8.RuneCountInString(openFence+closeFence))
	return openFence + body + closeFence
}

// truncate shortens value to at most limit runes, marking the cut with "...".
func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
