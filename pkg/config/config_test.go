package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-flavour/pkg/config"
)

func TestParse_YAML(t *testing.T) {
	doc := []byte(`
template_loaders:
  - filesystem
  - app
template_prefix: flavours/
flavours:
  - full
  - mobile
default_flavour: mobile
`)

	cfg, err := config.Parse(doc, "test.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := config.Config{
		TemplateLoaders: []string{"filesystem", "app"},
		TemplatePrefix:  "flavours/",
		Flavours:        []string{"full", "mobile"},
		DefaultFlavour:  "mobile",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_JSON(t *testing.T) {
	doc := []byte(`{"template_loaders": ["filesystem"], "template_prefix": ""}`)

	cfg, err := config.Parse(doc, "test.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"filesystem"}, cfg.TemplateLoaders); diff != "" {
		t.Fatalf("loaders mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := config.Parse([]byte("  \n"), "empty.yaml"); err == nil {
		t.Fatalf("expected empty document to fail")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flavours.yaml")
	if err := os.WriteFile(path, []byte("template_prefix: p/\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TemplatePrefix != "p/" {
		t.Fatalf("prefix = %q, want %q", cfg.TemplatePrefix, "p/")
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "zero value is valid", cfg: config.Config{}},
		{name: "default is valid", cfg: config.Default()},
		{
			name:    "blank loader identifier",
			cfg:     config.Config{TemplateLoaders: []string{"filesystem", " "}},
			wantErr: true,
		},
		{
			name:    "duplicate flavour",
			cfg:     config.Config{Flavours: []string{"mobile", "mobile"}},
			wantErr: true,
		},
		{
			name:    "default flavour not listed",
			cfg:     config.Config{Flavours: []string{"full"}, DefaultFlavour: "mobile"},
			wantErr: true,
		},
		{
			name: "default flavour without list",
			cfg:  config.Config{DefaultFlavour: "mobile"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
