// Package validate provides shared validation functions.
package validate

import (
	"fmt"
)

// MaxCount is the largest batch a single invocation may generate.
const MaxCount = 10_000

// Count validates a batch size.
func Count(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	if n > MaxCount {
		return fmt.Errorf("cannot exceed %d", MaxCount)
	}
	return nil
}

// Format validates an output format name.
func Format(format string) error {
	switch format {
	case "text", "json":
		return nil
	case "":
		return fmt.Errorf("format is required")
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
