package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "A new drama.", "A new drama."},
		{"inline tags removed", "A <b>new</b> drama.", "A new drama."},
		{"nested markup", "<p>Season <em>two</em> of <a href='#'>Show A</a></p>", "Season two of Show A"},
		{"whitespace collapsed", "Too   many\n\tspaces", "Too many spaces"},
		{"entities decoded", "Ben &amp; Jerry", "Ben & Jerry"},
		{"empty input", "", ""},
		{"only markup", "<br><img src='x'>", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripTags(tc.input))
		})
	}
}
