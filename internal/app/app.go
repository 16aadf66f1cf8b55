package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
	"lld/internal/usecase"
)

const (
	scheduledRunTimeout = 2 * time.Minute
	stopGracePeriod     = 5 * time.Second
)

// App manages the lifecycle of lesson runs, either once or on a cron schedule.
type App struct {
	cron     *cron.Cron
	usecase  *usecase.RunLessons
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. An empty schedule means run once.
func New(runner *usecase.RunLessons, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		usecase:  runner,
		logger:   logger,
		schedule: schedule,
	}
}

// Lessons lists the lessons that can be run.
func (a *App) Lessons() []model.Lesson {
	return a.usecase.Lessons()
}

// RunOnce runs the named lessons (all when empty) and publishes the digest.
func (a *App) RunOnce(ctx context.Context, keys ...string) (model.Digest, error) {
	return a.usecase.Run(ctx, keys...)
}

// Run executes the lessons once immediately and then, if a schedule is
// configured, according to it until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		_, err := a.usecase.Run(ctx)
		return err
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first lesson batch immediately")
	if _, err := a.usecase.Run(ctx); err != nil {
		a.logger.Error(ctx, "initial lesson run failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopGracePeriod):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledRunTimeout)
		defer cancel()
		if _, err := a.usecase.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled lesson run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	return nil
}
