// Package flavour selects and caches templates based on a runtime-detected
// flavour (mobile, desktop, ...), falling back to the unflavoured template
// when no flavour-specific variant exists. It wires the flavour resolver, a
// delegate loader chain, and a compile backend into a single caching facade.
package flavour

import (
	"context"
	"fmt"

	"github.com/goliatone/go-flavour/pkg/config"
	"github.com/goliatone/go-flavour/pkg/engine/gotemplate"
	"github.com/goliatone/go-flavour/pkg/loader"
	"github.com/goliatone/go-flavour/pkg/observe"
	"github.com/goliatone/go-flavour/pkg/resolve"
	"github.com/goliatone/go-flavour/pkg/template"
)

// Template is a compiled, renderable template.
type Template = template.Template

// Origin records where a template was found on first resolution.
type Origin = template.Origin

// Artifact is the loader result: raw source or a renderable template.
type Artifact = loader.Artifact

// Config captures the recognised configuration options.
type Config = config.Config

// NotFoundError reports an unresolvable template; it matches ErrNotFound.
type NotFoundError = template.NotFoundError

// ErrNotFound is the sentinel matched by every NotFoundError.
var ErrNotFound = template.ErrNotFound

// IsNotFound reports whether err signals a missing template.
func IsNotFound(err error) bool {
	return template.IsNotFound(err)
}

// WithFlavour stores flavour on the context for the duration of a request.
func WithFlavour(ctx context.Context, flavour string) context.Context {
	return resolve.WithFlavour(ctx, flavour)
}

// CurrentFlavour returns the flavour stored on the context, if any.
func CurrentFlavour(ctx context.Context) string {
	return resolve.FromContext(ctx)
}

// Option customises the facade configuration.
type Option func(*builder)

type builder struct {
	loaders  []loader.Loader
	registry *loader.Registry
	ids      []string
	compiler template.Compiler
	source   resolve.Source
	prefix   string
	metrics  observe.Metrics
}

// WithLoaders appends already-constructed delegate loaders, in order.
func WithLoaders(loaders ...loader.Loader) Option {
	return func(b *builder) {
		b.loaders = append(b.loaders, loaders...)
	}
}

// WithRegistry supplies the registry loader identifiers resolve through.
func WithRegistry(registry *loader.Registry) Option {
	return func(b *builder) {
		b.registry = registry
	}
}

// WithLoaderIDs appends loader identifiers resolved lazily via the registry.
func WithLoaderIDs(ids ...string) Option {
	return func(b *builder) {
		b.ids = append(b.ids, ids...)
	}
}

// WithCompiler overrides the compile backend. Defaults to the pongo2-backed
// gotemplate engine.
func WithCompiler(compiler template.Compiler) Option {
	return func(b *builder) {
		b.compiler = compiler
	}
}

// WithFlavourSource overrides how the current flavour is read. Defaults to
// the context accessor.
func WithFlavourSource(source resolve.Source) Option {
	return func(b *builder) {
		b.source = source
	}
}

// WithTemplatePrefix prepends prefix to flavoured names.
func WithTemplatePrefix(prefix string) Option {
	return func(b *builder) {
		b.prefix = prefix
	}
}

// WithMetrics wires the cache-lookup observability hook.
func WithMetrics(metrics observe.Metrics) Option {
	return func(b *builder) {
		b.metrics = metrics
	}
}

// WithConfig applies a parsed configuration document: loader identifiers and
// the template prefix.
func WithConfig(cfg Config) Option {
	return func(b *builder) {
		b.ids = append(b.ids, cfg.TemplateLoaders...)
		if cfg.TemplatePrefix != "" {
			b.prefix = cfg.TemplatePrefix
		}
	}
}

// New constructs the caching facade. At least one loader or loader identifier
// is required; the chain resolves identifiers lazily so New can run before
// the host finishes registering loaders.
func New(options ...Option) (*loader.CachedLoader, error) {
	b := &builder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	chain, err := b.buildChain()
	if err != nil {
		return nil, err
	}

	if b.compiler == nil {
		engine, err := gotemplate.New()
		if err != nil {
			return nil, fmt.Errorf("flavour: build default engine: %w", err)
		}
		b.compiler = engine
	}

	cached := []loader.CachedOption{
		loader.WithResolver(b.resolver()),
	}
	if b.metrics != nil {
		cached = append(cached, loader.WithMetrics(b.metrics))
	}
	return loader.NewCached(chain, b.compiler, cached...), nil
}

// NewSimple constructs the non-caching variant, which probes the chain for
// the flavoured name only and also exposes raw-source loading.
func NewSimple(options ...Option) (*loader.Simple, error) {
	b := &builder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	chain, err := b.buildChain()
	if err != nil {
		return nil, err
	}
	return loader.NewSimple(chain, loader.WithSimpleResolver(b.resolver())), nil
}

func (b *builder) buildChain() (*loader.Chain, error) {
	if len(b.loaders) == 0 && len(b.ids) == 0 {
		return nil, fmt.Errorf("flavour: at least one loader is required")
	}
	if len(b.ids) > 0 && b.registry == nil {
		return nil, fmt.Errorf("flavour: loader identifiers need a registry")
	}
	if len(b.ids) == 0 {
		return loader.NewChain(b.loaders...), nil
	}
	if len(b.loaders) == 0 {
		return loader.NewChainFromIDs(b.registry, b.ids...), nil
	}
	return loader.NewMixedChain(b.registry, b.loaders, b.ids...), nil
}

func (b *builder) resolver() *resolve.Resolver {
	var opts []resolve.Option
	if b.prefix != "" {
		opts = append(opts, resolve.WithPrefix(b.prefix))
	}
	return resolve.New(b.source, opts...)
}
