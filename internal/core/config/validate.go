package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/shortid/pkg/randid"
	"github.com/hay-kot/shortid/pkg/tmpl"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// TemplateData defines available fields for output templates.
type TemplateData struct {
	ID     string
	Index  int
	Length int
	Safety string
}

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this checks template syntax and file access.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder

	if err := c.Validate(); err != nil {
		errs = appendAll(errs, err)
	}

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil {
			if info.IsDir() {
				errs = errs.Append("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
			}
		} else if !os.IsNotExist(err) {
			errs = errs.Append("config_file", fmt.Errorf("cannot access %s: %w", configPath, err))
		}
	}

	if c.Source != "" && !c.UsesSystemSource() {
		if err := randid.CheckDevice(c.Source); err != nil {
			errs = errs.Append("source", err)
		}
	}

	if c.Template != "" {
		if err := validateTemplate(c.Template, TemplateData{}); err != nil {
			errs = errs.Append("template", fmt.Errorf("template error: %w", err))
		}
	}

	return errs.ToError()
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if a, err := randid.Assess(c.Length); err == nil && a.Safety != randid.SafetySafe {
		warnings = append(warnings, ValidationWarning{
			Category: "Collision Risk",
			Item:     "length",
			Message: fmt.Sprintf("length %d is %s (%s chance of a collision in %d IDs)",
				c.Length, a.Safety, randid.FormatProbability(a.Probability), randid.ReferencePopulation),
		})
	}

	if c.Workers > c.Count {
		warnings = append(warnings, ValidationWarning{
			Category: "Workers",
			Item:     "workers",
			Message:  fmt.Sprintf("%d workers for %d IDs; extra workers stay idle", c.Workers, c.Count),
		})
	}

	return warnings
}

// appendAll copies the field errors in err into errs.
func appendAll(errs criterio.FieldErrorsBuilder, err error) criterio.FieldErrorsBuilder {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return errs.Append("", err)
	}
	for _, fe := range fieldErrs {
		errs = errs.Append(fe.Field, fe.Err)
	}
	return errs
}

// validateTemplate checks if a template string is valid.
func validateTemplate(tmplStr string, data any) error {
	t, err := template.New("").Funcs(tmpl.Funcs()).Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return err
	}

	// Dry-run execute to catch missing key errors
	return t.Execute(io.Discard, data)
}
