package loader

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-flavour/pkg/template"
)

// ThemeLoader resolves logical template names through a go-theme manifest:
// the selected theme (and variant) maps names to filesystem paths, which are
// then read from the supplied fs.FS. Variant templates take precedence over
// the manifest base, so a "mobile" variant can override individual templates
// while the rest fall through.
type ThemeLoader struct {
	name     string
	selector theme.ThemeSelector
	themeNm  string
	variant  string
	fsys     fs.FS

	once      sync.Once
	templates map[string]string
	selectErr error
}

var _ Loader = (*ThemeLoader)(nil)
var _ SourceLoader = (*ThemeLoader)(nil)

// NewThemeLoader constructs a loader that selects themeName/variant through
// selector and reads the mapped template files from fsys. Selection is
// deferred until the first lookup so the loader can be built before the theme
// provider finishes registering manifests.
func NewThemeLoader(selector theme.ThemeSelector, themeName, variant string, fsys fs.FS) *ThemeLoader {
	return &ThemeLoader{
		name:     "theme",
		selector: selector,
		themeNm:  themeName,
		variant:  variant,
		fsys:     fsys,
	}
}

// Name identifies the loader in origins.
func (l *ThemeLoader) Name() string {
	return l.name
}

// Find returns the mapped template source and the manifest path it resolved to.
func (l *ThemeLoader) Find(ctx context.Context, name string, dirs []string) (Artifact, string, error) {
	source, display, err := l.LoadSource(ctx, name, dirs)
	if err != nil {
		return Artifact{}, "", err
	}
	return Artifact{Source: source}, display, nil
}

// LoadSource resolves name through the selected manifest and reads the file.
func (l *ThemeLoader) LoadSource(ctx context.Context, name string, _ []string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	templates, err := l.resolved()
	if err != nil {
		return "", "", err
	}

	path, ok := templates[name]
	if !ok {
		return "", "", template.NotFound(name)
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return "", "", template.NotFound(name)
	}
	return string(data), path, nil
}

// resolved selects the theme once and memoizes the merged template map.
func (l *ThemeLoader) resolved() (map[string]string, error) {
	l.once.Do(func() {
		if l.selector == nil || l.fsys == nil {
			l.selectErr = fmt.Errorf("loader: theme loader needs a selector and an fs")
			return
		}
		selection, err := l.selector.Select(l.themeNm, l.variant)
		if err != nil {
			l.selectErr = fmt.Errorf("loader: select theme %q: %w", l.themeNm, err)
			return
		}
		if selection == nil || selection.Manifest == nil {
			l.selectErr = fmt.Errorf("loader: theme %q has no manifest", l.themeNm)
			return
		}
		l.templates = mergeThemeTemplates(selection.Manifest, selection.Variant)
	})
	return l.templates, l.selectErr
}

// mergeThemeTemplates overlays the variant template map on the manifest base.
func mergeThemeTemplates(manifest *theme.Manifest, variant string) map[string]string {
	merged := make(map[string]string, len(manifest.Templates))
	for key, path := range manifest.Templates {
		merged[key] = path
	}
	if variant == "" {
		return merged
	}
	if v, ok := manifest.Variants[variant]; ok {
		for key, path := range v.Templates {
			merged[key] = path
		}
	}
	return merged
}
