// Package template defines the engine-agnostic contracts shared by loaders
// and compile backends: the renderable Template, the Compiler seam the host
// engine plugs into, origin metadata, and the single not-found error kind.
package template
