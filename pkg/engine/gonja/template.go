package gonja

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nikolalohinski/gonja/v2/exec"

	"github.com/goliatone/go-flavour/pkg/template"
)

// Template wraps a compiled gonja template.
type Template struct {
	name   string
	origin *template.Origin
	tmpl   *exec.Template
}

var _ template.Template = (*Template)(nil)

// Name returns the name the template was compiled under.
func (t *Template) Name() string {
	return t.name
}

// Origin returns the resolution metadata recorded at compile time, if any.
func (t *Template) Origin() *template.Origin {
	return t.origin
}

// Render executes the template against data and returns the output,
// additionally copying it to any supplied writers.
func (t *Template) Render(data any, out ...io.Writer) (string, error) {
	values, err := convertToMap(data)
	if err != nil {
		return "", fmt.Errorf("gonja: convert data: %w", err)
	}

	rendered, err := t.tmpl.ExecuteToString(exec.NewContext(values))
	if err != nil {
		return "", fmt.Errorf("gonja: execute template %q: %w", t.name, err)
	}

	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func convertToMap(data any) (map[string]any, error) {
	switch v := data.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out := map[string]any{}
		if err := json.Unmarshal(b, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}
