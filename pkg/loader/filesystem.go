package loader

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-flavour/pkg/template"
)

// FilesystemLoader reads template source from directories on disk. A per-call
// directory set overrides the configured one, mirroring how host frameworks
// scope lookups to view-specific directories.
type FilesystemLoader struct {
	name string
	dirs []string
}

var _ Loader = (*FilesystemLoader)(nil)
var _ SourceLoader = (*FilesystemLoader)(nil)

// NewFilesystemLoader constructs a loader searching dirs in order.
func NewFilesystemLoader(dirs ...string) *FilesystemLoader {
	return &FilesystemLoader{
		name: "filesystem",
		dirs: append([]string(nil), dirs...),
	}
}

// Name identifies the loader in origins.
func (l *FilesystemLoader) Name() string {
	return l.name
}

// Find returns the template source and the absolute path it was read from.
func (l *FilesystemLoader) Find(ctx context.Context, name string, dirs []string) (Artifact, string, error) {
	source, display, err := l.LoadSource(ctx, name, dirs)
	if err != nil {
		return Artifact{}, "", err
	}
	return Artifact{Source: source}, display, nil
}

// LoadSource reads the raw template source, probing each directory in order.
func (l *FilesystemLoader) LoadSource(ctx context.Context, name string, dirs []string) (string, string, error) {
	if name == "" {
		return "", "", template.NotFound(name)
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	search := dirs
	if len(search) == 0 {
		search = l.dirs
	}

	for _, dir := range search {
		path, ok := safeJoin(dir, name)
		if !ok {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return string(data), path, nil
	}
	return "", "", template.NotFound(name)
}

// safeJoin joins dir and name, rejecting names that escape dir.
func safeJoin(dir, name string) (string, bool) {
	joined := filepath.Join(dir, filepath.FromSlash(name))
	cleaned := filepath.Clean(dir)
	if cleaned != "." && !strings.HasPrefix(joined, cleaned+string(filepath.Separator)) {
		return "", false
	}
	return joined, true
}

// FSLoader reads template source from an fs.FS, typically an embed.FS holding
// app-bundled templates. The per-call directory set selects subtrees within
// the filesystem.
type FSLoader struct {
	name string
	fsys fs.FS
}

var _ Loader = (*FSLoader)(nil)
var _ SourceLoader = (*FSLoader)(nil)

// NewFSLoader constructs a loader over fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{name: "fs", fsys: fsys}
}

// Name identifies the loader in origins.
func (l *FSLoader) Name() string {
	return l.name
}

// Find returns the template source and the fs path it was read from.
func (l *FSLoader) Find(ctx context.Context, name string, dirs []string) (Artifact, string, error) {
	source, display, err := l.LoadSource(ctx, name, dirs)
	if err != nil {
		return Artifact{}, "", err
	}
	return Artifact{Source: source}, display, nil
}

// LoadSource reads the raw template source from the filesystem, probing each
// directory prefix in order when dirs are supplied.
func (l *FSLoader) LoadSource(ctx context.Context, name string, dirs []string) (string, string, error) {
	if l.fsys == nil || name == "" {
		return "", "", template.NotFound(name)
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	candidates := []string{name}
	if len(dirs) > 0 {
		candidates = make([]string, 0, len(dirs))
		for _, dir := range dirs {
			candidates = append(candidates, path.Join(dir, name))
		}
	}

	for _, candidate := range candidates {
		if !fs.ValidPath(candidate) {
			continue
		}
		data, err := fs.ReadFile(l.fsys, candidate)
		if err != nil {
			continue
		}
		return string(data), candidate, nil
	}
	return "", "", template.NotFound(name)
}
