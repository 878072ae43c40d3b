package resolve

import "context"

// Source reports the flavour active for the current request. An empty string
// means no flavour is active and template names pass through unchanged.
type Source interface {
	Current(ctx context.Context) string
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) string

// Current calls fn.
func (fn SourceFunc) Current(ctx context.Context) string {
	return fn(ctx)
}

// Static returns a Source that always reports flavour, regardless of context.
func Static(flavour string) Source {
	return SourceFunc(func(context.Context) string {
		return flavour
	})
}

type contextKey struct{}

// WithFlavour stores flavour on the context for the duration of a request.
func WithFlavour(ctx context.Context, flavour string) context.Context {
	return context.WithValue(ctx, contextKey{}, flavour)
}

// FromContext returns the flavour previously stored with WithFlavour, or an
// empty string when none is set.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if flavour, ok := ctx.Value(contextKey{}).(string); ok {
		return flavour
	}
	return ""
}

// ContextSource reads the flavour from the request context. It is the default
// Source when none is configured.
func ContextSource() Source {
	return SourceFunc(FromContext)
}
