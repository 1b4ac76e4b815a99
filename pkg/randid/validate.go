package randid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidateLength checks that length is within [MinLength, MaxLength].
func ValidateLength(length int) error {
	switch {
	case length < MinLength:
		return lengthError("must be at least %d characters", MinLength)
	case length > MaxLength:
		return lengthError("cannot exceed %d characters", MaxLength)
	default:
		return nil
	}
}

// ParseLength converts user input such as a flag value into a validated
// length. Fractional values, NaN, infinities and non-numeric input are
// rejected as non-integers; "8.0" is accepted as 8.
func ParseLength(s string) (int, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		if err := ValidateLength(n); err != nil {
			return 0, err
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, lengthError("must be an integer")
	}

	return LengthFromFloat(f)
}

// LengthFromFloat validates a length supplied as a float64, as decoded from
// JSON. The value must be a mathematical integer.
func LengthFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, lengthError("must be an integer")
	}

	// Range checks happen on the float so huge values cannot overflow int.
	if f < MinLength {
		return 0, lengthError("must be at least %d characters", MinLength)
	}
	if f > MaxLength {
		return 0, lengthError("cannot exceed %d characters", MaxLength)
	}

	return int(f), nil
}

func lengthError(format string, args ...any) error {
	return fmt.Errorf("%w: %w", ErrInvalidLength,
		criterio.NewFieldErrors("length", fmt.Errorf("length "+format, args...)))
}
