// Package gotemplate implements the compile step on a pongo2 template set,
// mirroring the github.com/goliatone/go-template engine contract. It is the
// default backend wired by the root package.
package gotemplate
