package randid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharset(t *testing.T) {
	cs := GetCharset()
	assert.Len(t, cs, 62)
	assert.Equal(t, Charset, cs)

	seen := make(map[rune]bool)
	for _, r := range cs {
		assert.False(t, seen[r], "duplicate character %q", r)
		seen[r] = true
	}

	for i := 0; i < len(cs); i++ {
		assert.Equal(t, i, charsetIndex(cs[i]))
	}
}

func TestGetConfig(t *testing.T) {
	cfg := GetConfig()
	assert.Equal(t, Config{
		DefaultLength: 7,
		MinLength:     7,
		MaxLength:     32,
		Charset:       Charset,
	}, cfg)

	t.Run("snapshots are independent", func(t *testing.T) {
		first := GetConfig()
		first.DefaultLength = 99
		first.MinLength = 1
		first.Charset = "abc"

		second := GetConfig()
		assert.Equal(t, cfg, second)
		assert.Equal(t, Charset, GetCharset())
	})
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	generated, err := GenerateDefault()
	assert.NoError(t, err)

	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"generated", generated, true},
		{"min_length", "abcdefg", true},
		{"max_length", "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345", true},
		{"mixed", "aZ09bY18", true},
		{"empty", "", false},
		{"too_short", "abc123", false},
		{"too_long", "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456", false},
		{"with_dash", "abc-defg", false},
		{"with_underscore", "abc_defg", false},
		{"with_space", "abc defg", false},
		{"non_ascii", "abcdéfgh", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValid(tc.id))
		})
	}
}
