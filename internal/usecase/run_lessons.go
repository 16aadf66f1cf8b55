package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
)

var (
	// ErrUnknownLesson is returned when a requested lesson key is not in the catalog.
	ErrUnknownLesson = errors.New("unknown lesson")
	// ErrAllLessonsFailed is returned when not a single lesson succeeded.
	ErrAllLessonsFailed = errors.New("all lessons failed")
)

const digestTitle = "Low-level design lessons"

// RunLessons orchestrates running lessons and publishing their transcripts.
type RunLessons struct {
	catalog     ports.LessonCatalog
	publisher   ports.Publisher
	logger      ports.Logger
	concurrency int
	defaults    []string
	now         func() time.Time
}

// RunLessonsConfig controls optional behaviours for the run.
type RunLessonsConfig struct {
	Concurrency int
	// Lessons run when the caller does not name any. Empty means all.
	Lessons []string
}

// NewRunLessons constructs a RunLessons use case.
func NewRunLessons(
	catalog ports.LessonCatalog,
	publisher ports.Publisher,
	logger ports.Logger,
	cfg RunLessonsConfig,
) *RunLessons {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &RunLessons{
		catalog:     catalog,
		publisher:   publisher,
		logger:      logger,
		concurrency: concurrency,
		defaults:    cfg.Lessons,
		now:         time.Now,
	}
}

// Lessons lists the catalog in display order.
func (r *RunLessons) Lessons() []model.Lesson {
	all := r.catalog.List()
	out := make([]model.Lesson, 0, len(all))
	for _, l := range all {
		out = append(out, l.Info())
	}
	return out
}

// Run executes the named lessons, or the configured defaults when keys is empty,
// and publishes one digest. Transcripts keep catalog order regardless of which
// lesson finishes first.
func (r *RunLessons) Run(ctx context.Context, keys ...string) (model.Digest, error) {
	if len(keys) == 0 {
		keys = r.defaults
	}
	selected, err := r.selectLessons(keys)
	if err != nil {
		return model.Digest{}, err
	}

	digest := model.Digest{
		Title:       digestTitle,
		StartedAt:   r.now(),
		Transcripts: make([]model.Transcript, len(selected)),
	}
	r.logger.Info(ctx, "starting lesson run", "lessons", len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, lesson := range selected {
		g.Go(func() error {
			digest.Transcripts[i] = r.runOne(gctx, lesson)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return digest, err
	}

	failures := digest.Failures()
	if len(selected) > 0 && failures == len(selected) {
		r.logger.Error(ctx, "every lesson failed", "lessons", len(selected))
		return digest, ErrAllLessonsFailed
	}

	if err := r.publisher.Publish(ctx, digest); err != nil {
		r.logger.Error(ctx, "failed to publish digest", "error", err)
		return digest, fmt.Errorf("publish digest: %w", err)
	}

	r.logger.Info(ctx, "lesson run completed",
		"lessons", len(selected),
		"failures", failures,
		"duration", time.Since(digest.StartedAt))
	return digest, nil
}

func (r *RunLessons) selectLessons(keys []string) ([]ports.Lesson, error) {
	if len(keys) == 0 {
		return r.catalog.List(), nil
	}

	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := r.catalog.Get(k); !ok {
			return nil, fmt.Errorf("%q: %w", k, ErrUnknownLesson)
		}
		want[k] = struct{}{}
	}

	selected := make([]ports.Lesson, 0, len(want))
	for _, l := range r.catalog.List() {
		if _, ok := want[l.Info().Key]; ok {
			selected = append(selected, l)
		}
	}
	return selected, nil
}

func (r *RunLessons) runOne(ctx context.Context, lesson ports.Lesson) model.Transcript {
	info := lesson.Info()
	start := time.Now()

	var buf bytes.Buffer
	err := r.safeRun(ctx, lesson, &buf)

	t := model.Transcript{
		Lesson:   info,
		Output:   buf.String(),
		Duration: time.Since(start),
		Err:      err,
	}
	if err != nil {
		r.logger.Error(ctx, "lesson failed", "lesson", info.Key, "error", err)
	} else {
		r.logger.Debug(ctx, "lesson finished", "lesson", info.Key, "duration", t.Duration)
	}
	return t
}

// safeRun turns a panicking lesson into a failed transcript.
func (r *RunLessons) safeRun(ctx context.Context, lesson ports.Lesson, buf *bytes.Buffer) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lesson panicked: %v", rec)
		}
	}()
	if err := ctx.Err(); err != nil {
		return err
	}
	return lesson.Run(ctx, buf)
}
