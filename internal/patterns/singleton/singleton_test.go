package singleton

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceIsSharedAcrossGoroutines(t *testing.T) {
	const workers = 64
	got := make([]*Logger, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Instance()
		}()
	}
	wg.Wait()

	for _, l := range got {
		require.Same(t, got[0], l)
	}
	assert.Equal(t, 1, Instances())
}

func TestLoggerCollectsEntries(t *testing.T) {
	l := Instance()
	before := l.Logged()

	Instance().Log("hello %s", "world")

	entries := l.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "hello world", entries[len(entries)-1])
	assert.Equal(t, before+1, l.Logged())
}

func TestRegistryDoubleCheckedLocking(t *testing.T) {
	const workers = 64
	got := make([]*Registry, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = RegistryInstance()
		}()
	}
	wg.Wait()

	for _, r := range got {
		require.Same(t, got[0], r)
	}
	assert.Equal(t, 1, RegistryBuilds())

	RegistryInstance().Set("env", "test")
	v, ok := got[0].Get("env")
	assert.True(t, ok)
	assert.Equal(t, "test", v)
}

func TestLoggerKeepsOnlyRecentEntries(t *testing.T) {
	l := Instance()
	before := l.Logged()

	for i := range MaxEntries + 10 {
		l.Log("entry %d", i)
	}

	entries := l.Entries()
	require.Len(t, entries, MaxEntries)
	assert.Equal(t, "entry 10", entries[0])
	assert.Equal(t, fmt.Sprintf("entry %d", MaxEntries+9), entries[len(entries)-1])
	assert.Equal(t, before+MaxEntries+10, l.Logged())
}
