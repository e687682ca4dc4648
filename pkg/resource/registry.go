package resource

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds named resource types so callers can look types up by
// their singular name (config-driven wiring, generic tooling). Thread-safe
// for concurrent reads; registration normally happens at init time.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Type)}
}

// Register adds a type keyed by its singular name. Duplicate names overwrite.
func (r *Registry) Register(t *Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[t.Singular] = t
}

// Lookup returns the type registered under a singular name.
func (r *Registry) Lookup(name string) (*Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.entries[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("resource type %q not registered", name)
}

// ListAll returns all registered types sorted by singular name.
func (r *Registry) ListAll() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Type, 0, len(r.entries))
	for _, t := range r.entries {
		out = append(out, t)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Singular < out[b].Singular })
	return out
}

// defaultRegistry backs the package-level registration helpers. Concrete
// resource definition packages register into it from init.
var defaultRegistry = NewRegistry()

// Register adds a type to the process-wide default registry.
func Register(t *Type) {
	defaultRegistry.Register(t)
}

// Lookup finds a type in the process-wide default registry.
func Lookup(name string) (*Type, error) {
	return defaultRegistry.Lookup(name)
}

// Types returns all types in the process-wide default registry.
func Types() []*Type {
	return defaultRegistry.ListAll()
}
