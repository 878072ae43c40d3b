// Package resolve computes flavour-qualified template names. A Source
// supplies the ambient flavour for the current request (typically from the
// request context) and the Resolver derives the name loaders should probe.
package resolve
