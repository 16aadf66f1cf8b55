package lessons

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lld/internal/adapter/docstore"
	"lld/internal/adapter/logging"
	"lld/internal/config"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	fixtures, err := config.LoadFixtures("")
	require.NoError(t, err)
	c, err := NewCatalog(fixtures, docstore.NewMemory(), logging.Discard())
	require.NoError(t, err)
	return c
}

func runLesson(t *testing.T, c *Catalog, key string) string {
	t.Helper()
	l, ok := c.Get(key)
	require.True(t, ok, key)
	var buf bytes.Buffer
	require.NoError(t, l.Run(context.Background(), &buf))
	return buf.String()
}

func TestCatalogOrderAndKeys(t *testing.T) {
	c := newCatalog(t)
	var keys []string
	for _, l := range c.List() {
		keys = append(keys, l.Info().Key)
		assert.NotEmpty(t, l.Info().Title)
		assert.NotEmpty(t, l.Info().Pattern)
	}
	assert.Equal(t, []string{"strategy", "factory", "singleton", "decorator", "proxy", "command", "facade", "chain", "composite", "editor"}, keys)

	_, ok := c.Get("observer")
	assert.False(t, ok)
}

func TestNewCatalogRequiresDependencies(t *testing.T) {
	_, err := NewCatalog(nil, docstore.NewMemory(), nil)
	assert.Error(t, err)
	_, err = NewCatalog(&config.Fixtures{}, nil, nil)
	assert.Error(t, err)
}

func TestEveryLessonRuns(t *testing.T) {
	c := newCatalog(t)
	for _, l := range c.List() {
		t.Run(l.Info().Key, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, l.Run(context.Background(), &buf))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestStrategyLessonOutput(t *testing.T) {
	out := runLesson(t, newCatalog(t), "strategy")
	assert.Contains(t, out, "Buddy: walking normally, talking normally, cannot fly")
	assert.Contains(t, out, "after upgrade Atlas: talking normally, flying with jet boosters")
	assert.Contains(t, out, "quick sort [42 7 19 3 88 1] -> [1 3 7 19 42 88]")
}

func TestSingletonLessonReportsOnlyItsOwnEntries(t *testing.T) {
	c := newCatalog(t)
	for range 2 {
		out := runLesson(t, c, "singleton")
		assert.Contains(t, out, "all received the same instances: true")
		assert.Contains(t, out, "logger received 16 entries this run")
	}
}

func TestChainLessonOutput(t *testing.T) {
	out := runLesson(t, newCatalog(t), "chain")
	assert.Contains(t, out, "cash box: 2 x 2000, 5 x 500, 10 x 100 (balance 7500)")
	assert.Contains(t, out, "withdraw 5700: 2 x 2000, 3 x 500, 2 x 100")
	assert.Contains(t, out, "withdraw 1200: 2 x 500, 2 x 100")
	assert.Contains(t, out, "withdraw 50: dispense 50: 50 left over")
	assert.Contains(t, out, "withdraw 4000: dispense 4000: 3400 left over")
	assert.Contains(t, out, "cash box: 0 x 2000, 0 x 500, 6 x 100 (balance 600)")
}

func TestCompositeLessonOutput(t *testing.T) {
	out := runLesson(t, newCatalog(t), "composite")
	assert.Contains(t, out, "$ ls\nreadme.md\ndocs/\nphotos/\ndownloads/\n")
	assert.Contains(t, out, "$ size\n10680\n")
	assert.Contains(t, out, "$ pwd\n/photos/trip\n")
	assert.Contains(t, out, "$ cd readme.md\ncd readme.md: not a directory\n")
	assert.Contains(t, out, "$ cd nowhere\nnowhere: no such file or directory\n")
	assert.Contains(t, out, "largest file: beach.jpg (5000 bytes)")
}

func TestFacadeLessonOutput(t *testing.T) {
	out := runLesson(t, newCatalog(t), "facade")
	assert.Contains(t, out, "A-1 ok: charged 9.00, ref RAZORPAY-A-1-0001")
	assert.Contains(t, out, "A-2 failed:")
	assert.Contains(t, out, "insufficient funds")
	assert.Contains(t, out, "A-3 failed:")
	assert.Contains(t, out, "out of stock")
	assert.Contains(t, out, "A-4 ok: charged 1.50")
	assert.Contains(t, out, "stock left: burger=1 fries=9")
}

func TestCommandLessonOutput(t *testing.T) {
	out := runLesson(t, newCatalog(t), "command")
	assert.Contains(t, out, "press 0: living room light is ON")
	assert.Contains(t, out, "undo: nothing to undo")
	assert.Contains(t, out, "press 1: slot 1: no command assigned")
}

func TestProxyLessonOutput(t *testing.T) {
	out := runLesson(t, newCatalog(t), "proxy")
	assert.Contains(t, out, "protection: unlock handbook.pdf for bob: premium membership required")
	assert.Contains(t, out, "virtual: loads so far: 1")
	assert.Contains(t, out, "caching: 2 hits, 2 misses")
}

func TestEditorLessonPersists(t *testing.T) {
	out := runLesson(t, newCatalog(t), "editor")
	assert.Contains(t, out, "--- text ---\nDesign patterns\n\tPrefer composition over inheritance.\n[Image: uml/strategy.png]")
	assert.Contains(t, out, `<img src="uml/strategy.png" alt="strategy diagram"/>`)
	assert.Contains(t, out, "saved 6 elements as html")
	assert.Contains(t, out, "reload ok: true")
}

func TestBuildTreeRejectsFileRoot(t *testing.T) {
	_, err := BuildTree(config.Entry{Name: "file.txt", Size: 3})
	assert.Error(t, err)

	_, err = BuildTree(config.Entry{Name: "root", Children: []config.Entry{{Name: "a"}, {Name: "a"}}})
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestLessonReportsWriteErrors(t *testing.T) {
	c := newCatalog(t)
	l, _ := c.Get("decorator")
	assert.ErrorContains(t, l.Run(context.Background(), failingWriter{}), "closed pipe")
}
