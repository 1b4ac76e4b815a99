// Package tmpl provides template rendering for formatted ID output.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Funcs returns the functions available to output templates:
//   - upper: upper-case a string
//   - lower: lower-case a string
//   - pad: left-pad an integer with zeros to the given width
func Funcs() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"pad":   pad,
	}
}

func pad(width, n int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(Funcs()).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
