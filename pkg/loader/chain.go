package loader

import (
	"fmt"
	"sync"
)

// Chain is an ordered loader list resolved on demand. Identifier entries are
// looked up in the registry only when Loaders is first called, so a chain can
// be constructed before the host has registered its loaders; the resolved
// list is memoized and the accessor is read-only thereafter.
type Chain struct {
	registry *Registry
	ids      []string
	direct   []Loader

	once     sync.Once
	resolved []Loader
	err      error
}

// NewChain builds a chain over already-constructed loaders, in order.
func NewChain(loaders ...Loader) *Chain {
	return &Chain{direct: loaders}
}

// NewChainFromIDs builds a chain that resolves ids through registry on first
// use, preserving order.
func NewChainFromIDs(registry *Registry, ids ...string) *Chain {
	return &Chain{
		registry: registry,
		ids:      append([]string(nil), ids...),
	}
}

// NewMixedChain builds a chain running direct loaders ahead of loaders
// resolved from ids through registry.
func NewMixedChain(registry *Registry, direct []Loader, ids ...string) *Chain {
	return &Chain{
		registry: registry,
		direct:   append([]Loader(nil), direct...),
		ids:      append([]string(nil), ids...),
	}
}

// Loaders returns the resolved loader list. Resolution runs once; a failed
// resolution is sticky and reported on every call.
func (c *Chain) Loaders() ([]Loader, error) {
	c.once.Do(c.resolve)
	return c.resolved, c.err
}

func (c *Chain) resolve() {
	loaders := make([]Loader, 0, len(c.direct)+len(c.ids))
	for _, l := range c.direct {
		if l == nil {
			continue
		}
		loaders = append(loaders, l)
	}
	for _, id := range c.ids {
		if c.registry == nil {
			c.err = fmt.Errorf("loader: chain references %q but has no registry", id)
			return
		}
		l, err := c.registry.Resolve(id)
		if err != nil {
			c.err = fmt.Errorf("loader: resolve chain: %w", err)
			return
		}
		loaders = append(loaders, l)
	}
	if len(loaders) == 0 {
		c.err = fmt.Errorf("loader: chain is empty")
		return
	}
	c.resolved = loaders
}
