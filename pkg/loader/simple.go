package loader

import (
	"context"

	"github.com/goliatone/go-flavour/pkg/resolve"
	"github.com/goliatone/go-flavour/pkg/template"
)

// SimpleOption customises the simple loader.
type SimpleOption func(*Simple)

// WithSimpleResolver injects the flavour resolver used to qualify names.
func WithSimpleResolver(resolver *resolve.Resolver) SimpleOption {
	return func(l *Simple) {
		if resolver != nil {
			l.resolver = resolver
		}
	}
}

// Simple is the non-caching variant: it qualifies the requested name with the
// current flavour and probes the chain for that name only, with no fallback
// to the unflavoured name and no memoization. It implements Loader itself, so
// it can sit inside a host's loader list ahead of the defaults.
type Simple struct {
	name     string
	resolver *resolve.Resolver
	chain    *Chain
}

var _ Loader = (*Simple)(nil)
var _ SourceLoader = (*Simple)(nil)

// NewSimple constructs the simple loader over chain.
func NewSimple(chain *Chain, options ...SimpleOption) *Simple {
	l := &Simple{
		name:     "flavour",
		resolver: resolve.New(nil),
		chain:    chain,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Name identifies the loader in origins.
func (l *Simple) Name() string {
	return l.name
}

// Find probes each delegate for the flavoured name, in order.
func (l *Simple) Find(ctx context.Context, name string, dirs []string) (Artifact, string, error) {
	flavoured := l.resolver.Prepare(ctx, name)

	loaders, err := l.chain.Loaders()
	if err != nil {
		return Artifact{}, "", err
	}

	for _, delegate := range loaders {
		artifact, display, err := delegate.Find(ctx, flavoured, dirs)
		if err == nil {
			return artifact, display, nil
		}
		if !template.IsNotFound(err) {
			return Artifact{}, "", err
		}
	}
	return Artifact{}, "", template.NotFound(flavoured)
}

// LoadSource probes each delegate exposing the raw-source capability for the
// flavoured name; delegates without it are skipped.
func (l *Simple) LoadSource(ctx context.Context, name string, dirs []string) (string, string, error) {
	flavoured := l.resolver.Prepare(ctx, name)

	loaders, err := l.chain.Loaders()
	if err != nil {
		return "", "", err
	}

	for _, delegate := range loaders {
		source, ok := delegate.(SourceLoader)
		if !ok {
			continue
		}
		raw, display, err := source.LoadSource(ctx, flavoured, dirs)
		if err == nil {
			return raw, display, nil
		}
		if !template.IsNotFound(err) {
			return "", "", err
		}
	}
	return "", "", template.NotFound(flavoured)
}
