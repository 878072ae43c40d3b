package loader

import (
	"context"

	"github.com/goliatone/go-flavour/pkg/template"
)

// MemoryLoader serves templates from an in-memory map keyed by template name.
// It is primarily useful in tests and for programmatically generated
// templates. The directory set is ignored; names address the map directly.
type MemoryLoader struct {
	name      string
	templates map[string]string
}

var _ Loader = (*MemoryLoader)(nil)
var _ SourceLoader = (*MemoryLoader)(nil)

// NewMemoryLoader constructs a loader over a copy of templates.
func NewMemoryLoader(templates map[string]string) *MemoryLoader {
	cpy := make(map[string]string, len(templates))
	for k, v := range templates {
		cpy[k] = v
	}
	return &MemoryLoader{name: "memory", templates: cpy}
}

// Name identifies the loader in origins.
func (l *MemoryLoader) Name() string {
	return l.name
}

// Find returns the stored source; the display name is the template name.
func (l *MemoryLoader) Find(ctx context.Context, name string, dirs []string) (Artifact, string, error) {
	source, display, err := l.LoadSource(ctx, name, dirs)
	if err != nil {
		return Artifact{}, "", err
	}
	return Artifact{Source: source}, display, nil
}

// LoadSource returns the stored raw source for name.
func (l *MemoryLoader) LoadSource(ctx context.Context, name string, _ []string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	source, ok := l.templates[name]
	if !ok {
		return "", "", template.NotFound(name)
	}
	return source, name, nil
}
