package template

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel every NotFoundError matches via errors.Is.
var ErrNotFound = errors.New("template: not found")

// NotFoundError reports that a template could not be resolved by any loader
// under any name variant. Name carries the originally requested template
// name, not the flavoured one.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template: %q not found", e.Name)
}

// Is reports a match against ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound builds a NotFoundError for name.
func NotFound(name string) error {
	return &NotFoundError{Name: name}
}

// IsNotFound reports whether err signals a missing template.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
