package module

import "sync"

// process-wide port registry, populated while modules mount
type registry struct {
	mu sync.RWMutex
	m  map[string]any
}

var ports = registry{m: make(map[string]any)}

// Register publishes a module's port set under its name
func Register(name string, p any) {
	ports.mu.Lock()
	defer ports.mu.Unlock()
	ports.m[name] = p
}

// PortsAs looks up a registered port set and asserts it to T
func PortsAs[T any](name string) (T, bool) {
	ports.mu.RLock()
	v, ok := ports.m[name]
	ports.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Reset drops every registration, for tests
func Reset() {
	ports.mu.Lock()
	defer ports.mu.Unlock()
	ports.m = make(map[string]any)
}
