package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWatchURL(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty input", "", "#"},
		{"strips path and query", "https://www.netflix.com/title/81234?src=cal", "https://netflix.com"},
		{"http scheme", "http://hulu.com/welcome", "https://hulu.com"},
		{"hbo max remap", "https://www.hbomax.com/some/show", "https://max.com"},
		{"apple tv subdomain kept", "https://tv.apple.com/us/show/x", "https://tv.apple.com"},
		{"unknown domain passthrough", "https://www.tvinsider.com/show/show-a/", "https://tvinsider.com"},
		{"bare domain", "example.org", "https://example.org"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeWatchURL(tc.input))
		})
	}
}

func TestEnsureHTTPS(t *testing.T) {
	assert.Equal(t, "https://netflix.com", EnsureHTTPS("netflix.com"))
	assert.Equal(t, "https://netflix.com", EnsureHTTPS("https://netflix.com"))
	assert.Equal(t, "http://legacy.example.com", EnsureHTTPS("http://legacy.example.com"))
}

func TestNormalizeChannelName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"HBO Max", "HBO Max"},
		{"hbo max", "HBO Max"},
		{"Disney Plus", "Disney+"},
		{"Paramount Plus", "Paramount+"},
		{"Some Local Station", "Some Local Station"},
		{"", "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeChannelName(tc.input))
		})
	}
}
