package loader

import (
	"context"

	"github.com/goliatone/go-flavour/pkg/template"
)

// Artifact is what a delegate loader hands back: raw template source, or a
// template that is already renderable (some backends pre-compile).
type Artifact struct {
	// Source holds the raw template text when the loader returns source.
	Source string

	// Template is non-nil when the loader returned a compiled template; the
	// facade skips the compile step in that case.
	Template template.Template
}

// Renderable reports whether the artifact can be rendered without compiling.
func (a Artifact) Renderable() bool {
	return a.Template != nil
}

// Loader is the delegate capability: given a template name and an optional
// ordered directory set, return the artifact plus a display name, or a
// not-found error. Implementations must treat dirs as read-only.
type Loader interface {
	// Name identifies the loader in origins and diagnostics.
	Name() string

	// Find returns the artifact and its display name, or an error matching
	// template.ErrNotFound when the loader has nothing for that name.
	Find(ctx context.Context, name string, dirs []string) (Artifact, string, error)
}

// SourceLoader is the optional raw-source variant consumed by the simple,
// non-caching loader. Backends that only deal in compiled templates omit it.
type SourceLoader interface {
	// LoadSource returns the raw template source and its display name.
	LoadSource(ctx context.Context, name string, dirs []string) (string, string, error)
}
