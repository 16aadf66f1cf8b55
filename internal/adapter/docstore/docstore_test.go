package docstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lld/internal/domain/model"
	"lld/internal/domain/ports"
)

func exerciseStore(t *testing.T, store ports.DocumentStore) {
	t.Helper()
	ctx := context.Background()
	doc := model.Document{
		ID:        "3f1c2a9e-0000-4000-8000-000000000001",
		Format:    "html",
		Content:   `<div class="document"><p>hi</p></div>`,
		CreatedAt: time.Date(2024, 5, 6, 7, 8, 9, 123, time.UTC),
	}

	require.NoError(t, store.Save(ctx, doc))
	got, err := store.Load(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	doc.Content = "updated"
	require.NoError(t, store.Save(ctx, doc))
	got, err = store.Load(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Content)

	_, err = store.Load(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrDocumentNotFound)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFile(t *testing.T) {
	store, err := NewFile(filepath.Join(t.TempDir(), "docs"))
	require.NoError(t, err)
	exerciseStore(t, store)

	err = store.Save(context.Background(), model.Document{ID: "../escape"})
	assert.ErrorContains(t, err, "invalid document id")
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
