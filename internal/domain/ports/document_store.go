package ports

import (
	"context"
	"errors"

	"lld/internal/domain/model"
)

// DocumentStore persists rendered editor documents.
type DocumentStore interface {
	Save(ctx context.Context, doc model.Document) error
	Load(ctx context.Context, id string) (model.Document, error)
}

// ErrDocumentNotFound is returned by Load when no document has the given id.
var ErrDocumentNotFound = errors.New("document not found")
