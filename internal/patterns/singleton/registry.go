package singleton

import (
	"sync"
	"sync/atomic"
)

// Registry is the double-checked locking variant: a lock-free fast path once
// the instance exists, a mutex only around first construction.
type Registry struct {
	mu     sync.RWMutex
	values map[string]string
}

var (
	registryMu       sync.Mutex
	registryInstance atomic.Pointer[Registry]
	registryBuilds   atomic.Int32
)

// RegistryInstance returns the shared Registry.
func RegistryInstance() *Registry {
	if r := registryInstance.Load(); r != nil {
		return r
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if r := registryInstance.Load(); r != nil {
		return r
	}
	registryBuilds.Add(1)
	r := &Registry{values: make(map[string]string)}
	registryInstance.Store(r)
	return r
}

// RegistryBuilds reports how many Registry values have been constructed.
func RegistryBuilds() int {
	return int(registryBuilds.Load())
}

func (r *Registry) Set(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

func (r *Registry) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}
