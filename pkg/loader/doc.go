// Package loader implements flavour-aware template resolution: the delegate
// Loader capability, concrete backends (filesystem, fs.FS, in-memory, theme
// manifests), the identifier registry with lazily resolved chains, and the
// CachedLoader facade that memoizes compiled templates per flavoured name.
package loader
