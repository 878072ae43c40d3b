package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures the recognised options. Zero values disable each feature:
// no prefix, no known flavours, no default flavour.
type Config struct {
	// TemplateLoaders is the ordered list of loader identifiers resolved
	// through the loader registry.
	TemplateLoaders []string `json:"template_loaders" yaml:"template_loaders"`

	// TemplatePrefix is prepended to flavoured names when non-empty.
	TemplatePrefix string `json:"template_prefix" yaml:"template_prefix"`

	// Flavours lists the flavours the host expects to serve.
	Flavours []string `json:"flavours" yaml:"flavours"`

	// DefaultFlavour is the flavour assumed when detection yields nothing.
	DefaultFlavour string `json:"default_flavour" yaml:"default_flavour"`
}

// Default returns the configuration mirroring an unconfigured deployment:
// no loaders, no prefix, full and mobile flavours with mobile as default.
func Default() Config {
	return Config{
		Flavours:       []string{"full", "mobile"},
		DefaultFlavour: "mobile",
	}
}

// Parse decodes data as JSON first, then YAML. source names the document in
// error messages.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err == nil {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err == nil {
		return cfg, nil
	}
	return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
}

// Load reads and parses the document at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Validate checks the document for startup-time errors: blank loader
// identifiers, duplicate flavours, and a default flavour missing from the
// flavour list.
func (c Config) Validate() error {
	for idx, id := range c.TemplateLoaders {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("config: template_loaders entry %d is empty", idx)
		}
	}

	seen := make(map[string]struct{}, len(c.Flavours))
	for _, flavour := range c.Flavours {
		if strings.TrimSpace(flavour) == "" {
			return fmt.Errorf("config: flavours contains an empty entry")
		}
		if _, dup := seen[flavour]; dup {
			return fmt.Errorf("config: flavour %q listed twice", flavour)
		}
		seen[flavour] = struct{}{}
	}

	if c.DefaultFlavour != "" && len(c.Flavours) > 0 {
		if _, ok := seen[c.DefaultFlavour]; !ok {
			return fmt.Errorf("config: default flavour %q not in flavours", c.DefaultFlavour)
		}
	}
	return nil
}
