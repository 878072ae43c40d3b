package template

import "io"

// Template is a compiled, renderable template. Implementations are provided
// by the engine backends (pkg/engine/gotemplate, pkg/engine/gonja) or by
// loaders that hand back pre-compiled artifacts.
type Template interface {
	// Name returns the name the template was compiled under.
	Name() string

	// Render executes the template against data and returns the output,
	// additionally copying it to any supplied writers.
	Render(data any, out ...io.Writer) (string, error)
}

// Compiler turns raw template source into a renderable Template. It stands in
// for the host engine's compile step; compile failures caused by a missing
// referenced template must be reported as a NotFoundError so the caching
// facade can back off to returning the raw source.
type Compiler interface {
	Compile(source string, origin *Origin, name string) (Template, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(source string, origin *Origin, name string) (Template, error)

// Compile calls fn.
func (fn CompilerFunc) Compile(source string, origin *Origin, name string) (Template, error) {
	return fn(source, origin, name)
}

// Origin records where a template was found on first resolution: the loader
// that produced it, the display name it reported, the name that matched
// (flavoured or original), and the directory set in effect.
type Origin struct {
	// DisplayName is the loader-reported location, typically a file path.
	DisplayName string

	// Loader is the name of the loader that produced the artifact.
	Loader string

	// TemplateName is the name that matched: the flavoured name when the
	// flavoured probe hit, otherwise the original name.
	TemplateName string

	// Dirs is the directory set supplied with the request, if any.
	Dirs []string
}

// NewOrigin builds an Origin, copying dirs so later caller mutation cannot
// alias into cached state.
func NewOrigin(displayName, loaderName, templateName string, dirs []string) *Origin {
	o := &Origin{
		DisplayName:  displayName,
		Loader:       loaderName,
		TemplateName: templateName,
	}
	if len(dirs) > 0 {
		o.Dirs = append([]string(nil), dirs...)
	}
	return o
}
