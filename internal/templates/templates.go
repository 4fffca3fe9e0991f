// Package templates renders E-DNA documents from embedded text/template
// files.
//
// Templates are parsed once by NewRenderer. Callers depend on the
// Renderer interface so tests can substitute a fake.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

// Template names.
const (
	Profile  = "profile.md.tmpl"
	Playbook = "playbook.md.tmpl"
)

//go:embed *.tmpl
var files embed.FS

// Renderer renders a named template with data.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// EmbedRenderer renders the templates embedded in the binary.
type EmbedRenderer struct {
	tmpl *template.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*EmbedRenderer, error) {
	tmpl, err := template.New("edna").Option("missingkey=error").ParseFS(files, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &EmbedRenderer{tmpl: tmpl}, nil
}

// Render executes the template called name.
func (r *EmbedRenderer) Render(name string, data any) (string, error) {
	t := r.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
