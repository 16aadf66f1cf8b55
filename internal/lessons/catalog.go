// Package lessons turns each pattern package into a runnable demonstration.
package lessons

import (
	"context"
	"fmt"
	"io"

	"lld/internal/config"
	"lld/internal/domain/model"
	"lld/internal/domain/ports"
)

// Catalog holds the lessons in display order.
type Catalog struct {
	lessons []ports.Lesson
	index   map[string]ports.Lesson
}

var _ ports.LessonCatalog = (*Catalog)(nil)

// NewCatalog registers every lesson. Fixtures seed the ATM and file system
// lessons; store receives the editor lesson's documents.
func NewCatalog(fixtures *config.Fixtures, store ports.DocumentStore, logger ports.Logger) (*Catalog, error) {
	if fixtures == nil {
		return nil, fmt.Errorf("lessons: fixtures are required")
	}
	if store == nil {
		return nil, fmt.Errorf("lessons: document store is required")
	}

	all := []ports.Lesson{
		strategyLesson(),
		factoryLesson(),
		singletonLesson(),
		decoratorLesson(),
		proxyLesson(),
		commandLesson(),
		facadeLesson(logger),
		chainLesson(fixtures.ATM),
		compositeLesson(fixtures.FileSystem),
		editorLesson(store),
	}

	c := &Catalog{index: make(map[string]ports.Lesson, len(all))}
	for _, l := range all {
		key := l.Info().Key
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("lessons: duplicate key %q", key)
		}
		c.index[key] = l
		c.lessons = append(c.lessons, l)
	}
	return c, nil
}

// List returns all lessons in display order.
func (c *Catalog) List() []ports.Lesson {
	return append([]ports.Lesson(nil), c.lessons...)
}

// Get looks a lesson up by key.
func (c *Catalog) Get(key string) (ports.Lesson, bool) {
	l, ok := c.index[key]
	return l, ok
}

type lesson struct {
	info model.Lesson
	run  func(ctx context.Context, p *printer) error
}

func (l lesson) Info() model.Lesson { return l.info }

func (l lesson) Run(ctx context.Context, out io.Writer) error {
	p := &printer{w: out}
	if err := l.run(ctx, p); err != nil {
		return err
	}
	return p.err
}

// printer remembers the first write error so lessons can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) writer() io.Writer {
	return p
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	p.err = err
	return n, err
}
