package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"lld/internal/domain/model"
)

// ErrNoStorage is returned by Save when the editor has nowhere to persist to.
var ErrNoStorage = errors.New("no storage configured")

// Storage persists rendered documents.
type Storage interface {
	Save(ctx context.Context, doc model.Document) error
}

// Editor assembles a document and caches its rendering until the next edit.
type Editor struct {
	mu       sync.Mutex
	elements []Element
	renderer Renderer
	storage  Storage
	rendered string
	dirty    bool
	now      func() time.Time
}

// Option configures an Editor.
type Option func(*Editor)

// WithRenderer swaps the rendering strategy. The default is PlainRenderer.
func WithRenderer(r Renderer) Option {
	return func(e *Editor) { e.renderer = r }
}

// WithStorage sets where Save writes to.
func WithStorage(s Storage) Option {
	return func(e *Editor) { e.storage = s }
}

// WithClock overrides the time source used for document timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

func New(opts ...Option) *Editor {
	e := &Editor{renderer: PlainRenderer{}, dirty: true, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) add(el Element) *Editor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.elements = append(e.elements, el)
	e.dirty = true
	return e
}

func (e *Editor) AddText(s string) *Editor { return e.add(Text{Content: s}) }

func (e *Editor) AddImage(path, alt string) *Editor { return e.add(Image{Path: path, Alt: alt}) }

func (e *Editor) AddNewLine() *Editor { return e.add(NewLine{}) }

func (e *Editor) AddTab() *Editor { return e.add(TabSpace{}) }

// Len is the number of elements in the document.
func (e *Editor) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.elements)
}

// SetRenderer switches format; the cached rendering is discarded.
func (e *Editor) SetRenderer(r Renderer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderer = r
	e.dirty = true
}

// Render returns the document in the current format.
func (e *Editor) Render() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.renderLocked()
}

func (e *Editor) renderLocked() (string, error) {
	if !e.dirty {
		return e.rendered, nil
	}
	out, err := e.renderer.Render(e.elements)
	if err != nil {
		return "", err
	}
	e.rendered = out
	e.dirty = false
	return out, nil
}

// Save renders the document and stores it under a fresh id, which it returns.
func (e *Editor) Save(ctx context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.storage == nil {
		return "", ErrNoStorage
	}
	content, err := e.renderLocked()
	if err != nil {
		return "", err
	}

	doc := model.Document{
		ID:        uuid.NewString(),
		Content:   content,
		Format:    e.renderer.Format(),
		CreatedAt: e.now().UTC(),
	}
	if err := e.storage.Save(ctx, doc); err != nil {
		return "", fmt.Errorf("save document %s: %w", doc.ID, err)
	}
	return doc.ID, nil
}
