package proxy

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Image can be shown on screen.
type Image interface {
	Display() string
}

// Loader fetches the pixels of an image. It is expensive and must not run
// until the image is actually displayed.
type Loader func(name string) (Image, error)

// LazyImage is a virtual proxy that loads the real image on first Display.
type LazyImage struct {
	name   string
	loader Loader

	once  sync.Once
	real  Image
	err   error
	loads atomic.Int32
}

func NewLazyImage(name string, loader Loader) *LazyImage {
	return &LazyImage{name: name, loader: loader}
}

func (l *LazyImage) Display() string {
	l.once.Do(func() {
		l.loads.Add(1)
		l.real, l.err = l.loader(l.name)
	})
	if l.err != nil {
		return fmt.Sprintf("failed to load %s: %v", l.name, l.err)
	}
	return l.real.Display()
}

// Loaded reports how many times the underlying loader ran (0 or 1).
func (l *LazyImage) Loaded() int {
	return int(l.loads.Load())
}

// DiskImage is a real image.
type DiskImage struct {
	Name string
}

func (d DiskImage) Display() string {
	return "displaying " + d.Name
}
