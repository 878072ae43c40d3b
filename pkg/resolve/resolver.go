package resolve

import "context"

// Option customises the resolver configuration.
type Option func(*Resolver)

// WithPrefix sets the prefix prepended to flavoured names and enables
// prefixing. Pass an empty string to configure the prefix without enabling it.
func WithPrefix(prefix string) Option {
	return func(r *Resolver) {
		r.prefix = prefix
		r.applyPrefix = prefix != ""
	}
}

// WithPrefixEnabled toggles whether the configured prefix is applied.
func WithPrefixEnabled(enabled bool) Option {
	return func(r *Resolver) {
		r.applyPrefix = enabled
	}
}

// Resolver derives the flavour-qualified template name from the ambient
// flavour and an optional configured prefix. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	source      Source
	prefix      string
	applyPrefix bool
}

// New constructs a Resolver reading flavours from source. A nil source falls
// back to the context-based accessor.
func New(source Source, options ...Option) *Resolver {
	r := &Resolver{source: source}
	if r.source == nil {
		r.source = ContextSource()
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Prepare returns the flavour-qualified name for name. When no flavour is
// active the name passes through unchanged, so unflavoured deployments behave
// exactly like the underlying engine.
func (r *Resolver) Prepare(ctx context.Context, name string) string {
	flavour := r.source.Current(ctx)
	if flavour == "" {
		return name
	}
	prepared := flavour + "/" + name
	if r.applyPrefix && r.prefix != "" {
		prepared = r.prefix + prepared
	}
	return prepared
}

// Flavour reports the currently active flavour, if any.
func (r *Resolver) Flavour(ctx context.Context) string {
	return r.source.Current(ctx)
}
