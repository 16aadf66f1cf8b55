// Package singleton shows two ways of guaranteeing a single lazily built
// instance across goroutines.
package singleton

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// MaxEntries is how many recent messages the Logger retains.
const MaxEntries = 256

// Logger collects the most recent messages in memory. There is only ever
// one, obtained via Instance.
type Logger struct {
	mu      sync.Mutex
	entries []string
	logged  int
}

var (
	loggerOnce     sync.Once
	loggerInstance *Logger
	constructed    atomic.Int32
)

// Instance returns the process-wide Logger, constructing it on first use.
func Instance() *Logger {
	loggerOnce.Do(func() {
		constructed.Add(1)
		loggerInstance = &Logger{}
	})
	return loggerInstance
}

// Instances reports how many Logger values have been constructed.
func Instances() int {
	return int(constructed.Load())
}

func (l *Logger) Log(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logged++
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
	if over := len(l.entries) - MaxEntries; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
}

// Logged reports how many messages were ever logged, including dropped ones.
func (l *Logger) Logged() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logged
}

// Entries returns a copy of the retained messages, oldest first.
func (l *Logger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}
