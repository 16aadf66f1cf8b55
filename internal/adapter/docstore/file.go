package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
)

var safeID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// File writes one JSON file per document into a directory.
type File struct {
	dir string
}

var _ ports.DocumentStore = (*File)(nil)

// NewFile creates dir if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create document dir: %w", err)
	}
	return &File{dir: dir}, nil
}

type fileRecord struct {
	ID        string `json:"id"`
	Format    string `json:"format"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func (f *File) path(id string) (string, error) {
	if !safeID.MatchString(id) {
		return "", fmt.Errorf("invalid document id %q", id)
	}
	return filepath.Join(f.dir, id+".json"), nil
}

func (f *File) Save(ctx context.Context, doc model.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := f.path(doc.ID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(fileRecord{
		ID:        doc.ID,
		Format:    doc.Format,
		Content:   doc.Content,
		CreatedAt: formatTime(doc.CreatedAt),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit document: %w", err)
	}
	return nil
}

func (f *File) Load(ctx context.Context, id string) (model.Document, error) {
	if err := ctx.Err(); err != nil {
		return model.Document{}, err
	}
	p, err := f.path(id)
	if err != nil {
		return model.Document{}, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Document{}, ports.ErrDocumentNotFound
	}
	if err != nil {
		return model.Document{}, fmt.Errorf("read document: %w", err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.Document{}, fmt.Errorf("decode document %s: %w", id, err)
	}
	created, err := parseTime(rec.CreatedAt)
	if err != nil {
		return model.Document{}, fmt.Errorf("decode document %s: %w", id, err)
	}
	return model.Document{ID: rec.ID, Format: rec.Format, Content: rec.Content, CreatedAt: created}, nil
}
