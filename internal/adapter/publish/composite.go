package publish

import (
	"context"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
)

// Composite fans a digest out to several publishers.
type Composite struct {
	logger     ports.Logger
	publishers []ports.Publisher
}

var _ ports.Publisher = (*Composite)(nil)

// NewComposite constructs a publisher that delivers to the given publishers in order.
func NewComposite(logger ports.Logger, publishers ...ports.Publisher) *Composite {
	active := make([]ports.Publisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &Composite{
		logger:     logger,
		publishers: active,
	}
}

// Publish tries every publisher and returns the first error encountered.
func (c *Composite) Publish(ctx context.Context, digest model.Digest) error {
	var firstErr error
	for _, p := range c.publishers {
		if err := p.Publish(ctx, digest); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if c.logger != nil {
				c.logger.Error(ctx, "publisher failed", "error", err)
			}
		}
	}
	return firstErr
}

// Len reports how many publishers are attached.
func (c *Composite) Len() int {
	return len(c.publishers)
}
