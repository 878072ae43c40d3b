package loader

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a loader on first use. Identifier-based configuration maps
// names to factories so loader construction can be deferred until the host
// has finished its own initialisation.
type Factory func() (Loader, error)

// Registry stores loader factories by identifier, providing discovery and
// duplication safeguards. Configuration files reference loaders by these
// identifiers.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under id. Duplicate identifiers return an error.
func (r *Registry) Register(id string, factory Factory) error {
	if id == "" {
		return fmt.Errorf("loader: identifier is required")
	}
	if factory == nil {
		return fmt.Errorf("loader: factory is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("loader: %q already registered", id)
	}

	r.factories[id] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(id string, factory Factory) {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
}

// RegisterLoader registers an already-constructed loader under id.
func (r *Registry) RegisterLoader(id string, loader Loader) error {
	if loader == nil {
		return fmt.Errorf("loader: loader is required")
	}
	return r.Register(id, func() (Loader, error) {
		return loader, nil
	})
}

// Resolve builds the loader registered under id.
func (r *Registry) Resolve(id string) (Loader, error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("loader: %q not registered", id)
	}
	loader, err := factory()
	if err != nil {
		return nil, fmt.Errorf("loader: build %q: %w", id, err)
	}
	if loader == nil {
		return nil, fmt.Errorf("loader: factory %q returned nil", id)
	}
	return loader, nil
}

// Has reports whether an identifier is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// List returns a sorted list of registered identifiers.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
