//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSafeUint64ToInt64 tests the SafeUint64ToInt64 function.
func TestSafeUint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    uint64
		expected int64
	}{
		{
			name:     "normal value",
			input:    100,
			expected: 100,
		},
		{
			name:     "zero value",
			input:    0,
			expected: 0,
		},
		{
			name:     "value exceeding max int64",
			input:    9223372036854775808,
			expected: 9223372036854775807,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SafeUint64ToInt64(tt.input))
		})
	}
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "text/plain",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "text/html with charset",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "application/json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "application/xhtml+xml",
			contentType: "application/xhtml+xml",
			expected:    true,
		},
		{
			name:        "image/jpeg",
			contentType: "image/jpeg",
			expected:    false,
		},
		{
			name:        "text with invalid charset",
			contentType: "text/plain; charset=invalid",
			expected:    false,
		},
		{
			name:        "empty content type",
			contentType: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}

// TestCollapseSpaces tests the CollapseSpaces function.
func TestCollapseSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bohemian Rhapsody", CollapseSpaces("  Bohemian \n\t Rhapsody "))
	assert.Empty(t, CollapseSpaces(" \n "))
}

// TestNormalizeMultilineText tests the NormalizeMultilineText function.
func TestNormalizeMultilineText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "trims lines and squeezes spaces",
			input:    "  Is this   the real life?  \n Is this just fantasy? ",
			expected: "Is this the real life?\nIs this just fantasy?",
		},
		{
			name:     "keeps a single blank line between stanzas",
			input:    "\n\nline one\n\n\n\nline two\r\n\r\n",
			expected: "line one\n\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NormalizeMultilineText(tt.input))
		})
	}
}

// TestContainsAnyFold tests the ContainsAnyFold function.
func TestContainsAnyFold(t *testing.T) {
	t.Parallel()

	terms := []string{"(Remix)", "(live)", " "}

	assert.True(t, ContainsAnyFold("Hello (LIVE)", terms))
	assert.True(t, ContainsAnyFold("Hello (remix)", terms))
	assert.False(t, ContainsAnyFold("Hello", terms))
	assert.False(t, ContainsAnyFold("Hello", nil))
}

// TestMap tests the Map function.
