package editor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"lld/internal/domain/model"
)

type memStorage struct {
	docs []model.Document
	err  error
}

func (m *memStorage) Save(_ context.Context, doc model.Document) error {
	if m.err != nil {
		return m.err
	}
	m.docs = append(m.docs, doc)
	return nil
}

func sample(e *Editor) *Editor {
	return e.AddText("Hello, world").
		AddNewLine().
		AddTab().
		AddText("indented").
		AddNewLine().
		AddImage("pic.png", "")
}

func TestPlainRender(t *testing.T) {
	out, err := sample(New()).Render()
	require.NoError(t, err)
	assert.Equal(t, "Hello, world\n\tindented\n[Image: pic.png]", out)
}

func TestHTMLRender(t *testing.T) {
	e := sample(New(WithRenderer(HTMLRenderer{})))
	e.AddText("<script>")

	out, err := e.Render()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<div class="document"><p>Hello, world</p>`), out)
	assert.Contains(t, out, `<span class="tab">`+"\t"+`</span>indented`)
	assert.Contains(t, out, `<img src="pic.png" alt="pic.png"/>`)
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	var paragraphs int
	var count func(*html.Node)
	count = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			paragraphs++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			count(c)
		}
	}
	count(doc)
	assert.Equal(t, 3, paragraphs)
}

func TestRenderCacheInvalidatedOnEdit(t *testing.T) {
	e := New().AddText("a")
	out, err := e.Render()
	require.NoError(t, err)
	assert.Equal(t, "a", out)

	e.AddText("b")
	out, err = e.Render()
	require.NoError(t, err)
	assert.Equal(t, "ab", out)

	e.SetRenderer(HTMLRenderer{})
	out, err = e.Render()
	require.NoError(t, err)
	assert.Equal(t, `<div class="document"><p>ab</p></div>`, out)
}

func TestSave(t *testing.T) {
	store := &memStorage{}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e := sample(New(WithStorage(store), WithClock(func() time.Time { return at })))

	id, err := e.Save(context.Background())
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	require.Len(t, store.docs, 1)
	assert.Equal(t, id, store.docs[0].ID)
	assert.Equal(t, "text", store.docs[0].Format)
	assert.Equal(t, at, store.docs[0].CreatedAt)
	assert.Contains(t, store.docs[0].Content, "indented")
}

func TestSaveErrors(t *testing.T) {
	_, err := New().Save(context.Background())
	assert.ErrorIs(t, err, ErrNoStorage)

	boom := errors.New("disk full")
	_, err = New(WithStorage(&memStorage{err: boom})).AddText("x").Save(context.Background())
	assert.ErrorIs(t, err, boom)
}
