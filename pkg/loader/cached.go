package loader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-flavour/pkg/observe"
	"github.com/goliatone/go-flavour/pkg/resolve"
	"github.com/goliatone/go-flavour/pkg/template"
)

// CachedOption customises the caching facade.
type CachedOption func(*CachedLoader)

// WithResolver injects the flavour resolver. Defaults to a context-sourced
// resolver without a prefix.
func WithResolver(resolver *resolve.Resolver) CachedOption {
	return func(l *CachedLoader) {
		if resolver != nil {
			l.resolver = resolver
		}
	}
}

// WithMetrics injects the cache-lookup hook. Defaults to observe.Nop.
func WithMetrics(metrics observe.Metrics) CachedOption {
	return func(l *CachedLoader) {
		if metrics != nil {
			l.metrics = metrics
		}
	}
}

// CachedLoader wraps a loader chain and a compile step, memoizing compiled
// templates per cache key. The cache is unbounded and lives until Reset; keys
// are the flavoured name, or name plus a digest of the directory set when one
// is supplied. Concurrent first-time misses on a key are collapsed into a
// single probe.
type CachedLoader struct {
	resolver *resolve.Resolver
	chain    *Chain
	compiler template.Compiler
	metrics  observe.Metrics

	mu    sync.RWMutex
	cache map[string]template.Template
	group singleflight.Group
}

// NewCached constructs the caching facade over chain and compiler.
func NewCached(chain *Chain, compiler template.Compiler, options ...CachedOption) *CachedLoader {
	l := &CachedLoader{
		resolver: resolve.New(nil),
		chain:    chain,
		compiler: compiler,
		metrics:  observe.Nop{},
		cache:    make(map[string]template.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// loadResult carries a resolved template through the singleflight group.
type loadResult struct {
	artifact Artifact
	origin   *template.Origin
}

// Load returns the compiled template for name, consulting the cache first.
// On a first resolution the returned origin records which loader and name
// variant won; cache hits return a nil origin. When the probe finds source
// that the compile step reports as not-found, the raw artifact and origin are
// returned without being cached, so callers can report which template is
// actually missing.
func (l *CachedLoader) Load(ctx context.Context, name string, dirs []string) (Artifact, *template.Origin, error) {
	if l.compiler == nil {
		return Artifact{}, nil, fmt.Errorf("loader: cached loader has no compiler")
	}

	key := l.cacheKey(ctx, name, dirs)

	if tmpl, ok := l.lookup(key); ok {
		l.metrics.RecordLookup(ctx, key, true)
		return Artifact{Template: tmpl}, nil, nil
	}
	l.metrics.RecordLookup(ctx, key, false)

	v, err, _ := l.group.Do(key, func() (any, error) {
		if tmpl, ok := l.lookup(key); ok {
			return loadResult{artifact: Artifact{Template: tmpl}}, nil
		}
		return l.loadSlow(ctx, key, name, dirs)
	})
	if err != nil {
		return Artifact{}, nil, err
	}

	result := v.(loadResult)
	return result.artifact, result.origin, nil
}

// loadSlow performs the probe-compile-store sequence for a cache miss.
func (l *CachedLoader) loadSlow(ctx context.Context, key, name string, dirs []string) (loadResult, error) {
	artifact, origin, err := l.Find(ctx, name, dirs)
	if err != nil {
		return loadResult{}, err
	}

	if !artifact.Renderable() {
		tmpl, err := l.compiler.Compile(artifact.Source, origin, name)
		if err != nil {
			if template.IsNotFound(err) {
				// Compiling the found source references a template that does
				// not exist. Back off to the raw source and origin, uncached,
				// so the caller can identify the actual missing template.
				return loadResult{artifact: artifact, origin: origin}, nil
			}
			return loadResult{}, err
		}
		artifact.Template = tmpl
	}

	l.store(key, artifact.Template)
	return loadResult{artifact: artifact, origin: origin}, nil
}

// Find probes the loader chain: for each loader, in order, try the flavoured
// name and then fall back to the original name before moving on. A
// higher-priority loader's unflavoured template therefore wins over a
// lower-priority loader's flavoured one.
func (l *CachedLoader) Find(ctx context.Context, name string, dirs []string) (Artifact, *template.Origin, error) {
	flavoured := l.resolver.Prepare(ctx, name)

	loaders, err := l.chain.Loaders()
	if err != nil {
		return Artifact{}, nil, err
	}

	for _, delegate := range loaders {
		artifact, display, err := delegate.Find(ctx, flavoured, dirs)
		if err == nil {
			return artifact, template.NewOrigin(display, delegate.Name(), flavoured, dirs), nil
		}
		if !template.IsNotFound(err) {
			return Artifact{}, nil, err
		}

		if flavoured == name {
			continue
		}

		artifact, display, err = delegate.Find(ctx, name, dirs)
		if err == nil {
			return artifact, template.NewOrigin(display, delegate.Name(), name, dirs), nil
		}
		if !template.IsNotFound(err) {
			return Artifact{}, nil, err
		}
	}

	return Artifact{}, nil, template.NotFound(name)
}

// Reset empties the template cache. Use it when underlying templates change
// or flavour-to-template mappings must be invalidated en masse.
func (l *CachedLoader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]template.Template)
}

// Len reports the number of cached templates.
func (l *CachedLoader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cache)
}

// cacheKey derives the cache key: the flavoured name, or, when a directory
// set is supplied, the original name joined with a digest over the
// directories so distinct sets key distinct entries.
func (l *CachedLoader) cacheKey(ctx context.Context, name string, dirs []string) string {
	if len(dirs) > 0 {
		sum := sha256.Sum256([]byte(strings.Join(dirs, "|")))
		return name + "-" + hex.EncodeToString(sum[:])
	}
	return l.resolver.Prepare(ctx, name)
}

func (l *CachedLoader) lookup(key string) (template.Template, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tmpl, ok := l.cache[key]
	return tmpl, ok
}

func (l *CachedLoader) store(key string, tmpl template.Template) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache[key] = tmpl
}
