package ports

import (
	"context"

	"lld/internal/domain/model"
)

// Publisher delivers a digest of lesson transcripts downstream (console, Discord).
type Publisher interface {
	Publish(ctx context.Context, digest model.Digest) error
}
