package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"lld/internal/adapter/docstore"
	"lld/internal/adapter/logging"
	"lld/internal/adapter/publish"
	"lld/internal/config"
	"lld/internal/domain/ports"
	"lld/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return slog.New(logging.NewHandler(os.Stderr, cfg.LogFormat, cfg.LogLevel))
}

func provideFixtures(cfg *config.Config) (*config.Fixtures, error) {
	return config.LoadFixtures(cfg.FixturesPath)
}

func provideDocumentStore(cfg *config.Config, logger ports.Logger) (ports.DocumentStore, func(), error) {
	switch cfg.Store {
	case config.StoreFile:
		store, err := docstore.NewFile(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case config.StoreSQLite:
		ctx := context.Background()
		path := cfg.StorePath
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, "documents.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create store dir: %w", err)
		}
		store, err := docstore.OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := store.Close(); err != nil {
				logger.Error(ctx, "failed to close document store", "error", err)
			}
		}
		return store, cleanup, nil
	default:
		return docstore.NewMemory(), func() {}, nil
	}
}

func providePublisher(cfg *config.Config, logger ports.Logger) ports.Publisher {
	publishers := []ports.Publisher{publish.NewConsole(os.Stdout)}
	if cfg.DiscordWebhookURL != "" {
		publishers = append(publishers, publish.NewDiscordWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger))
	}
	return publish.NewComposite(logger, publishers...)
}

func provideRunConfig(cfg *config.Config) usecase.RunLessonsConfig {
	return usecase.RunLessonsConfig{
		Concurrency: cfg.Concurrency,
		Lessons:     cfg.Lessons,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
