package gotemplate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-flavour/pkg/template"
)

// Template wraps a compiled pongo2 template.
type Template struct {
	name   string
	origin *template.Origin
	tmpl   *pongo2.Template
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
	viewContext, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	var buf bytes.Buffer
	if err := t.tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", t.name, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func convertToContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		m, err := jsonToMap(v)
		if err != nil {
			return nil, err
		}
		return pongo2.Context(m), nil
	}
}

func jsonToMap(v any) (map[string]any, error) {
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
