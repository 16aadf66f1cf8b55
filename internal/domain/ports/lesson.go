package ports

import (
	"context"
	"io"

	"lld/internal/domain/model"
)

// Lesson is a single pattern demonstration writing its transcript to out.
type Lesson interface {
	Info() model.Lesson
	Run(ctx context.Context, out io.Writer) error
}

// LessonCatalog lists the lessons available to run, in display order.
type LessonCatalog interface {
	List() []Lesson
	Get(key string) (Lesson, bool)
}
