package utils

import (
	"regexp"
	"strings"
)

// slugRegex matches any character that is NOT a letter, a number, or a hyphen.
var (
	slugRegex   = regexp.MustCompile(`[^\p{L}\p{N}-]+`)
	hyphenRegex = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a channel or show name into a lowercase hyphenated slug.
func Slugify(name string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(name), " ", "-")
	slug = slugRegex.ReplaceAllString(slug, "")
	slug = hyphenRegex.ReplaceAllString(slug, "-")
	return strings.ToLower(strings.Trim(slug, "-"))
}

// UniqueStrings returns a new slice without duplicate entries, preserving
// first-seen order.
func UniqueStrings(slice []string) []string {
	keys := make(map[string]bool)
	uniqueSlice := []string{}
	for _, entry := range slice {
		if !keys[entry] {
			keys[entry] = true
			uniqueSlice = append(uniqueSlice, entry)
		}
	}
	return uniqueSlice
}
