// Package docstore persists rendered editor documents in memory, as files,
// or in SQLite.
package docstore

import (
	"context"
	"sync"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
)

// Memory keeps documents in a map.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]model.Document
}

var _ ports.DocumentStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{docs: make(map[string]model.Document)}
}

func (m *Memory) Save(_ context.Context, doc model.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.ID] = doc
	return nil
}

func (m *Memory) Load(_ context.Context, id string) (model.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[id]
	if !ok {
		return model.Document{}, ports.ErrDocumentNotFound
	}
	return doc, nil
}
