package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	flavour "github.com/goliatone/go-flavour"
	"github.com/goliatone/go-flavour/pkg/config"
	"github.com/goliatone/go-flavour/pkg/loader"
)

func main() {
	name := flag.String("name", "index.html", "template name to resolve")
	flavourName := flag.String("flavour", "", "flavour to resolve under (empty for none)")
	cfgPath := flag.String("config", "", "configuration file (JSON or YAML)")
	dirs := flag.String("dirs", "", "comma-separated template directories")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := loaded.Validate(); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
		cfg = loaded
	}

	search := splitDirs(*dirs)

	registry := loader.NewRegistry()
	registry.MustRegister("filesystem", func() (loader.Loader, error) {
		return loader.NewFilesystemLoader(search...), nil
	})

	options := []flavour.Option{
		flavour.WithRegistry(registry),
		flavour.WithConfig(cfg),
	}
	if len(cfg.TemplateLoaders) == 0 {
		options = append(options, flavour.WithLoaderIDs("filesystem"))
	}

	resolver, err := flavour.New(options...)
	if err != nil {
		log.Fatalf("Failed to build resolver: %v", err)
	}

	ctx := context.Background()
	if *flavourName != "" {
		ctx = flavour.WithFlavour(ctx, *flavourName)
	}

	artifact, origin, err := resolver.Load(ctx, *name, nil)
	if err != nil {
		log.Fatalf("Failed to resolve %q: %v", *name, err)
	}

	if origin != nil {
		fmt.Printf("resolved %q via loader %q as %q (%s)\n",
			*name, origin.Loader, origin.TemplateName, origin.DisplayName)
	} else {
		fmt.Printf("resolved %q from cache\n", *name)
	}
	if artifact.Renderable() {
		fmt.Println("artifact: compiled template")
	} else {
		fmt.Printf("artifact: raw source (%d bytes)\n", len(artifact.Source))
	}
}

func splitDirs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		dir := strings.TrimSpace(part)
		if dir == "" {
			continue
		}
		out = append(out, dir)
	}
	return out
}
