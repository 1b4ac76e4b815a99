// Package randid generates short random identifiers from a fixed 62 character
// alphabet using a cryptographically secure random source, and estimates the
// collision risk of a given ID length.
package randid

import (
	"errors"
	"fmt"
)

// Charset is the alphabet every generated ID is drawn from.
const Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	// DefaultLength is used when the caller does not ask for a specific length.
	DefaultLength = 7
	// MinLength is the shortest ID that will be generated.
	MinLength = 7
	// MaxLength is the longest ID that will be generated.
	MaxLength = 32
)

var (
	// ErrInvalidLength is returned when a requested ID length is not an
	// integer within [MinLength, MaxLength].
	ErrInvalidLength = errors.New("invalid length")
	// ErrCryptoGeneration is returned when the secure random source is
	// unavailable, fails, or is asked for an invalid amount of randomness.
	ErrCryptoGeneration = errors.New("crypto generation failed")
)

// Config is a snapshot of the generator limits. It is returned by value, so
// changing a copy never affects the package.
type Config struct {
	DefaultLength int    `json:"default_length" yaml:"default_length"`
	MinLength     int    `json:"min_length"     yaml:"min_length"`
	MaxLength     int    `json:"max_length"     yaml:"max_length"`
	Charset       string `json:"charset"        yaml:"charset"`
}

// GetCharset returns the alphabet IDs are drawn from.
func GetCharset() string {
	return Charset
}

// GetConfig returns the generator limits.
func GetConfig() Config {
	return Config{
		DefaultLength: DefaultLength,
		MinLength:     MinLength,
		MaxLength:     MaxLength,
		Charset:       Charset,
	}
}

// IsValid reports whether id could have been produced by Generate: its length
// is within bounds and every character is in Charset.
func IsValid(id string) bool {
	if len(id) < MinLength || len(id) > MaxLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if charsetIndex(id[i]) < 0 {
			return false
		}
	}
	return true
}

func charsetIndex(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= 'A' && c <= 'Z':
		return 26 + int(c-'A')
	case c >= '0' && c <= '9':
		return 52 + int(c-'0')
	default:
		return -1
	}
}

func cryptoErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCryptoGeneration, fmt.Sprintf(format, args...))
}
