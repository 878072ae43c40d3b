package gotemplate_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-flavour/pkg/engine/gotemplate"
	"github.com/goliatone/go-flavour/pkg/template"
)

func TestEngine_CompileAndRender(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	origin := template.NewOrigin("mem:index.html", "memory", "index.html", nil)
	tmpl, err := engine.Compile("Hello {{ name }}!", origin, "index.html")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if tmpl.Name() != "index.html" {
		t.Fatalf("name = %q, want %q", tmpl.Name(), "index.html")
	}

	out, err := tmpl.Render(map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello World!" {
		t.Fatalf("rendered %q, want %q", out, "Hello World!")
	}

	var buf strings.Builder
	if _, err := tmpl.Render(map[string]any{"name": "Again"}, &buf); err != nil {
		t.Fatalf("render to writer: %v", err)
	}
	if buf.String() != "Hello Again!" {
		t.Fatalf("writer got %q, want %q", buf.String(), "Hello Again!")
	}
}

func TestEngine_CompileWithIncludes(t *testing.T) {
	fsys := fstest.MapFS{
		"partials/header.html": &fstest.MapFile{Data: []byte("<header>{{ title }}</header>")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(fsys))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	tmpl, err := engine.Compile(`{% include "partials/header.html" %}<main></main>`, nil, "page.html")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	out, err := tmpl.Render(map[string]any{"title": "Home"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<header>Home</header><main></main>" {
		t.Fatalf("rendered %q", out)
	}
}

func TestEngine_MissingIncludeIsNotFound(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	_, err = engine.Compile(`{% include "partials/missing.html" %}`, nil, "page.html")
	if err == nil {
		t.Fatalf("expected compile to fail")
	}
	if !template.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	var notFound *template.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if notFound.Name != "page.html" {
		t.Fatalf("not-found name = %q, want %q", notFound.Name, "page.html")
	}
}

func TestEngine_SyntaxErrorPropagates(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	_, err = engine.Compile("{% if %}", nil, "broken.html")
	if err == nil {
		t.Fatalf("expected compile to fail")
	}
	if template.IsNotFound(err) {
		t.Fatalf("syntax error must not masquerade as not-found: %v", err)
	}
}

func TestEngine_GlobalData(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithGlobalData(map[string]any{
		"site": "example.org",
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	tmpl, err := engine.Compile("{{ site }}", nil, "footer.html")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, err := tmpl.Render(nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "example.org" {
		t.Fatalf("rendered %q, want %q", out, "example.org")
	}
}
