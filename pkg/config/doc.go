// Package config parses the flavour configuration document: the ordered
// loader identifiers, the optional flavoured-name prefix, and the known
// flavours. Documents may be JSON or YAML.
package config
