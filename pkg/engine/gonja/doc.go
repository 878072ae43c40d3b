// Package gonja implements the compile step on the gonja v2 engine for hosts
// that prefer strict Jinja2 semantics over pongo2.
package gonja
