// Package observe provides the cache-diagnostics hook: a small Metrics
// contract the caching facade reports lookups through, a no-op default, and
// an OpenTelemetry-backed implementation for hosts that export metrics.
package observe
