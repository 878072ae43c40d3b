package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-flavour/pkg/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	setName    string
	baseDir    string
	templates  fs.FS
	globalData map[string]any
}

// WithBaseDir points include/extends resolution at a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS points include/extends resolution at an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithGlobalData seeds global context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// WithGoTemplateOptions exists for parity with go-template engine
// configuration but is currently a no-op.
func WithGoTemplateOptions(_ ...gotemplatepkg.Option) Option {
	return func(*config) {}
}

// Engine compiles raw template source into renderable templates using a
// pongo2 template set.
type Engine struct {
	templateSet *pongo2.TemplateSet
}

// Ensure Engine implements the Compiler seam.
var _ template.Compiler = (*Engine)(nil)

// New constructs an Engine using the provided configuration options. Without
// a base dir or fs.FS, includes resolve relative to the working directory.
func New(options ...Option) (*Engine, error) {
	cfg := &config{setName: "flavour"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}
	if len(loaders) == 0 {
		loader, err := pongo2.NewLocalFileSystemLoader("")
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create default loader: %w", err)
		}
		loaders = append(loaders, loader)
	}

	engine := &Engine{
		templateSet: pongo2.NewSet(cfg.setName, loaders...),
	}

	if len(cfg.globalData) > 0 {
		if engine.templateSet.Globals == nil {
			engine.templateSet.Globals = make(pongo2.Context)
		}
		ctx, err := convertToContext(cfg.globalData)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
		}
		engine.templateSet.Globals.Update(ctx)
	}

	return engine, nil
}

// Compile parses source into a renderable template. A parse failure caused by
// a missing included or extended template is reported as not-found so the
// caching facade can back off to the raw source.
func (e *Engine) Compile(source string, origin *template.Origin, name string) (template.Template, error) {
	if e == nil || e.templateSet == nil {
		return nil, errors.New("gotemplate: engine is nil")
	}

	tmpl, err := e.templateSet.FromString(source)
	if err != nil {
		if isMissingDependency(err) {
			return nil, template.NotFound(name)
		}
		return nil, fmt.Errorf("gotemplate: compile template %q: %w", name, err)
	}

	return &Template{name: name, origin: origin, tmpl: tmpl}, nil
}

// isMissingDependency reports whether a pongo2 parse error stems from a
// referenced template file that does not exist.
func isMissingDependency(err error) bool {
	if err == nil {
		return false
	}
	var perr *pongo2.Error
	if errors.As(err, &perr) && perr.OrigError != nil && errors.Is(perr.OrigError, fs.ErrNotExist) {
		return true
	}
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	// pongo2 stringifies loader failures in nested parse errors.
	msg := err.Error()
	return strings.Contains(msg, "file does not exist") ||
		strings.Contains(msg, "no such file or directory") ||
		strings.Contains(msg, "unable to resolve template")
}
