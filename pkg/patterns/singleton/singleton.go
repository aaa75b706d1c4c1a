// Package singleton implements the Singleton example from the corpus: one
// shared registry, initialized exactly once, handed to every caller.
package singleton

import "sync"

// Registry is the shared instance. Access goes through Default.
type Registry struct {
	mu     sync.RWMutex
	values map[string]string
}

var (
	once     sync.Once
	instance *Registry
)

// Default returns the shared registry, creating it on first use.
func Default() *Registry {
	once.Do(func() {
		instance = &Registry{values: make(map[string]string)}
	})
	return instance
}

// Set stores a value.
func (r *Registry) Set(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// Get returns a value and whether it was present.
func (r *Registry) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// Reset discards the shared instance so the next Default call rebuilds it.
// Test helper; production code has no reason to call it.
func Reset() {
	once = sync.Once{}
	instance = nil
}
