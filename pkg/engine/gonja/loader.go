package gonja

import (
	"fmt"
	"io"
	"strings"

	"github.com/nikolalohinski/gonja/v2/loaders"
)

// mapLoader is a flat in-memory loader. Unlike gonja's MemoryLoader it does
// not enforce '/'-prefixed paths, so templates reference each other by the
// plain names used in the loader chain.
type mapLoader struct {
	templates map[string]string
}

var _ loaders.Loader = (*mapLoader)(nil)

// Read returns an io.Reader for the template content.
func (l *mapLoader) Read(path string) (io.Reader, error) {
	content, ok := l.templates[path]
	if !ok {
		return nil, fmt.Errorf("gonja: template %q not found", path)
	}
	return strings.NewReader(content), nil
}

// Resolve returns the path unchanged; the namespace is flat.
func (l *mapLoader) Resolve(path string) (string, error) {
	if _, ok := l.templates[path]; !ok {
		return "", fmt.Errorf("gonja: template %q not found", path)
	}
	return path, nil
}

// Inherit returns the same loader; relative resolution is not supported.
func (l *mapLoader) Inherit(string) (loaders.Loader, error) {
	return l, nil
}
