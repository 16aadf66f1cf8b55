//go:build wireinject

package di

import (
	"github.com/google/wire"

	"lld/internal/adapter/logging"
	"lld/internal/app"
	"lld/internal/config"
	"lld/internal/domain/ports"
	"lld/internal/lessons"
	"lld/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(cfg *config.Config) (*app.App, func(), error) {
	wire.Build(
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideFixtures,
		provideDocumentStore,
		lessons.NewCatalog,
		wire.Bind(new(ports.LessonCatalog), new(*lessons.Catalog)),
		providePublisher,
		provideRunConfig,
		usecase.NewRunLessons,
		provideSchedule,
		app.New,
	)
	return nil, nil, nil
}
