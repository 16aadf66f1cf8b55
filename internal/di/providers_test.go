package di

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lld/internal/adapter/docstore"
	"lld/internal/adapter/publish"
	"lld/internal/config"
	"lld/internal/domain/model"
)

func baseConfig() *config.Config {
	return &config.Config{
		Concurrency:    2,
		Store:          config.StoreMemory,
		RequestTimeout: time.Second,
		LogLevel:       "error",
		LogFormat:      "text",
	}
}

func TestProvideDocumentStore(t *testing.T) {
	cfg := baseConfig()
	store, cleanup, err := provideDocumentStore(cfg, nil)
	require.NoError(t, err)
	cleanup()
	assert.IsType(t, &docstore.Memory{}, store)

	cfg.Store = config.StoreFile
	cfg.StorePath = filepath.Join(t.TempDir(), "docs")
	store, cleanup, err = provideDocumentStore(cfg, nil)
	require.NoError(t, err)
	cleanup()
	assert.IsType(t, &docstore.File{}, store)

	cfg.Store = config.StoreSQLite
	cfg.StorePath = t.TempDir()
	store, cleanup, err = provideDocumentStore(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), model.Document{ID: "x", Format: "text", CreatedAt: time.Now()}))
	cleanup()
	assert.FileExists(t, filepath.Join(cfg.StorePath, "documents.db"))
}

func TestProvidePublisherAddsDiscordWhenConfigured(t *testing.T) {
	cfg := baseConfig()
	p := providePublisher(cfg, nil).(*publish.Composite)
	assert.Equal(t, 1, p.Len())

	cfg.DiscordWebhookURL = "https://discord.example/webhook"
	p = providePublisher(cfg, nil).(*publish.Composite)
	assert.Equal(t, 2, p.Len())
}

func TestInitializeAppRunsSelectedLessons(t *testing.T) {
	cfg := baseConfig()
	cfg.Lessons = []string{"chain", "composite"}

	a, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Len(t, a.Lessons(), 10)

	d, err := a.RunOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Transcripts, 2)
	assert.Equal(t, "chain", d.Transcripts[0].Lesson.Key)
	assert.Zero(t, d.Failures())
}

func TestInitializeAppBadFixtures(t *testing.T) {
	cfg := baseConfig()
	cfg.FixturesPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, _, err := InitializeApp(cfg)
	assert.Error(t, err)
}
