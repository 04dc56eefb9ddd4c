package model

import (
	"regexp"
	"strings"
)

// MaxSlugLength matches the width of the slug columns.
const MaxSlugLength = 191

var slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a lowercase, hyphen-separated identifier.
// Every run of characters outside [a-z0-9] becomes a single hyphen.
// Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	s = slugSeparator.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// slugOr normalizes slug when set, otherwise derives one from name.
func slugOr(slug, name string) string {
	if strings.TrimSpace(slug) != "" {
		return Slugify(slug)
	}
	return Slugify(name)
}
