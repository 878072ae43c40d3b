package gonja

import (
	"errors"
	"fmt"
	"strings"

	gonjapkg "github.com/nikolalohinski/gonja/v2"
	"github.com/nikolalohinski/gonja/v2/builtins"
	gonjaconfig "github.com/nikolalohinski/gonja/v2/config"
	"github.com/nikolalohinski/gonja/v2/exec"

	"github.com/goliatone/go-flavour/pkg/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates map[string]string
	trim      bool
}

// WithTemplates supplies templates reachable from {% include %} and
// {% extends %} directives, keyed by the names used in those directives.
func WithTemplates(templates map[string]string) Option {
	return func(cfg *config) {
		if len(templates) == 0 {
			return
		}
		if cfg.templates == nil {
			cfg.templates = make(map[string]string, len(templates))
		}
		for name, content := range templates {
			cfg.templates[name] = content
		}
	}
}

// WithWhitespaceControl enables TrimBlocks and LeftStripBlocks for cleaner
// block output.
func WithWhitespaceControl() Option {
	return func(cfg *config) {
		cfg.trim = true
	}
}

// Engine compiles raw template source with gonja v2.
type Engine struct {
	cfg         *gonjaconfig.Config
	environment *exec.Environment
	templates   map[string]string
}

var _ template.Compiler = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	gcfg := &gonjaconfig.Config{
		BlockStartString:    "{%",
		BlockEndString:      "%}",
		VariableStartString: "{{",
		VariableEndString:   "}}",
		CommentStartString:  "{#",
		CommentEndString:    "#}",
	}
	if cfg.trim {
		gcfg.TrimBlocks = true
		gcfg.LeftStripBlocks = true
	}

	environment := &exec.Environment{
		Filters:           builtins.Filters,
		Tests:             builtins.Tests,
		ControlStructures: builtins.ControlStructures,
		Methods:           builtins.Methods,
		Context:           builtins.GlobalFunctions,
	}

	return &Engine{
		cfg:         gcfg,
		environment: environment,
		templates:   cfg.templates,
	}, nil
}

// Compile parses source into a renderable template. Parse failures caused by
// a missing included or extended template are reported as not-found.
func (e *Engine) Compile(source string, origin *template.Origin, name string) (template.Template, error) {
	if e == nil {
		return nil, errors.New("gonja: engine is nil")
	}

	// Expose the entry template to the loader alongside configured includes
	// so gonja resolves the whole set in memory.
	merged := make(map[string]string, len(e.templates)+1)
	for key, content := range e.templates {
		merged[key] = content
	}
	merged[name] = source

	compiled, err := exec.NewTemplate(name, e.cfg, &mapLoader{templates: merged}, e.environment)
	if err != nil {
		if isMissingDependency(err) {
			return nil, template.NotFound(name)
		}
		return nil, fmt.Errorf("gonja: compile template %q: %w", name, err)
	}

	return &Template{name: name, origin: origin, tmpl: compiled}, nil
}

// FromString compiles a standalone template with the package defaults. It is
// a convenience mirroring gonja.FromString for callers that bypass loaders.
func FromString(source string) (*exec.Template, error) {
	return gonjapkg.FromString(source)
}

func isMissingDependency(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "not found")
}
