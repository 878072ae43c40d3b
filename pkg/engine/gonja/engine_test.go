package gonja_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-flavour/pkg/engine/gonja"
	"github.com/goliatone/go-flavour/pkg/template"
)

func TestEngine_CompileAndRender(t *testing.T) {
	engine, err := gonja.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	tmpl, err := engine.Compile("Hello {{ name }}!", nil, "index.html")
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
	engine, err := gonja.New(gonja.WithTemplates(map[string]string{
		"header.html": "<header>{{ title }}</header>",
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	tmpl, err := engine.Compile(`{% include "header.html" %}<main></main>`, nil, "page.html")
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

func TestFromString(t *testing.T) {
	tmpl, err := gonja.FromString("static output")
	if err != nil {
		t.Fatalf("from string: %v", err)
	}
	if tmpl == nil {
		t.Fatalf("expected compiled template")
	}
}

func TestEngine_MissingIncludeIsNotFound(t *testing.T) {
	engine, err := gonja.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	_, err = engine.Compile(`{% include "missing.html" %}`, nil, "page.html")
	if err == nil {
		t.Fatalf("expected compile to fail")
	}
	if !template.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
