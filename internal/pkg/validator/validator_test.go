package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatOr(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		input    *string
		fallback float64
		want     float64
	}{
		{"nil pointer", nil, 8, 8},
		{"blank", str(""), 8, 8},
		{"whitespace only", str("   "), 8, 8},
		{"integer", str("7"), 8, 7},
		{"decimal", str("7.5"), 8, 7.5},
		{"padded", str(" 6 "), 8, 6},
		{"zero", str("0"), 8, 0},
		{"negative", str("-1"), 8, 8},
		{"non-numeric", str("abc"), 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFloatOr(tt.input, tt.fallback))
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("worker_01"))
	assert.True(t, IsValidUsername("kim.chulsoo"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
	assert.False(t, IsValidUsername("한글이름"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = IsValidDate("10-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}
