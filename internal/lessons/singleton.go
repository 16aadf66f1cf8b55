package lessons

import (
	"context"
	"sync"

	"lld/internal/domain/model"
	"lld/internal/patterns/singleton"
)

func singletonLesson() lesson {
	return lesson{
		info: model.Lesson{
			Key:     "singleton",
			Title:   "One logger for everyone",
			Pattern: "Singleton",
			Summary: "Lazy, thread-safe construction with sync.Once and with double-checked locking.",
		},
		run: func(_ context.Context, p *printer) error {
			const workers = 16
			before := singleton.Instance().Logged()
			var wg sync.WaitGroup
			loggers := make([]*singleton.Logger, workers)
			registries := make([]*singleton.Registry, workers)
			for i := range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					loggers[i] = singleton.Instance()
					registries[i] = singleton.RegistryInstance()
					loggers[i].Log("worker %d checked in", i)
				}()
			}
			wg.Wait()

			same := true
			for i := range workers {
				if loggers[i] != loggers[0] || registries[i] != registries[0] {
					same = false
				}
			}
			p.line("%d goroutines asked for the logger and the registry", workers)
			p.line("all received the same instances: %t", same)
			p.line("loggers constructed: %d, registries constructed: %d", singleton.Instances(), singleton.RegistryBuilds())
			p.line("logger received %d entries this run", singleton.Instance().Logged()-before)
			return nil
		},
	}
}
