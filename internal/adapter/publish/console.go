package publish

import (
	"context"
	"fmt"
	"io"
	"strings"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
)

// Console writes transcripts to a terminal, one section per lesson.
type Console struct {
	out io.Writer
}

var _ ports.Publisher = (*Console)(nil)

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Publish(_ context.Context, digest model.Digest) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", digest.Title)
	for _, t := range digest.Transcripts {
		fmt.Fprintf(&b, "\n== %s (%s) ==\n", t.Lesson.Title, t.Lesson.Pattern)
		if t.Output != "" {
			b.WriteString(t.Output)
			if !strings.HasSuffix(t.Output, "\n") {
				b.WriteByte('\n')
			}
		}
		if t.Failed() {
			fmt.Fprintf(&b, "!! lesson failed: %v\n", t.Err)
		}
	}
	fmt.Fprintf(&b, "\n%d lessons, %d failed\n", len(digest.Transcripts), digest.Failures())

	_, err := io.WriteString(c.out, b.String())
	return err
}
