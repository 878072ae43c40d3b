package observe

import "context"

// Metrics receives cache lookup outcomes from the caching facade.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic; they should return quickly.
type Metrics interface {
	// RecordLookup records one cache lookup for key and whether it hit.
	RecordLookup(ctx context.Context, key string, hit bool)
}

// Nop discards all observations. It is the default when no hook is wired.
type Nop struct{}

var _ Metrics = (*Nop)(nil)

// RecordLookup does nothing.
func (Nop) RecordLookup(context.Context, string, bool) {}

// MetricsFunc adapts a function to the Metrics interface.
type MetricsFunc func(ctx context.Context, key string, hit bool)

// RecordLookup calls fn.
func (fn MetricsFunc) RecordLookup(ctx context.Context, key string, hit bool) {
	fn(ctx, key, hit)
}
