package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/shortid/internal/core/config"
)

// ConfigCheck reports validation errors and warnings for the loaded config.
type ConfigCheck struct {
	cfg  *config.Config
	path string
}

func NewConfigCheck(cfg *config.Config, path string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, path: path}
}

func (c *ConfigCheck) Name() string { return "Configuration" }

func (c *ConfigCheck) Run(_ context.Context) Result {
	res := Result{Name: c.Name()}
	if c.cfg == nil {
		res.Fail("Config loaded", "configuration not loaded")
		return res
	}

	err := c.cfg.ValidateDeep(c.path)
	warnings := c.cfg.Warnings()

	if err == nil && len(warnings) == 0 {
		res.Pass("Config valid", fmt.Sprintf("length %d, format %s", c.cfg.Length, c.cfg.Format))
		return res
	}

	var fieldErrs criterio.FieldErrors
	switch {
	case err == nil:
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			res.Fail(orDefault(fe.Field, "validation"), fe.Err.Error())
		}
	default:
		res.Fail("validation", err.Error())
	}

	for _, w := range warnings {
		label := w.Category
		if w.Item != "" {
			label = fmt.Sprintf("%s (%s)", w.Category, w.Item)
		}
		res.Warn(label, w.Message)
	}

	return res
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
