package utils

import (
	"fmt"
	"regexp"
	"strings"

	"mercadito/pkg/errors"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s-]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	hyphenRunPattern  = regexp.MustCompile(`-+`)
)

// SlugEntry is the projection of a record the uniqueness check needs.
type SlugEntry struct {
	ID   string
	Slug string
}

// GenerateSlug derives a URL-safe slug from free text: lowercase, trimmed,
// non-word characters stripped, whitespace collapsed to single hyphens.
func GenerateSlug(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = nonWordPattern.ReplaceAllString(slug, "")
	slug = whitespacePattern.ReplaceAllString(slug, "-")
	slug = hyphenRunPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsSlugUnique reports whether no other record owns slug. excludeID skips the
// record itself during updates.
func IsSlugUnique(slug string, entries []SlugEntry, excludeID string) bool {
	for _, entry := range entries {
		if entry.Slug == slug && entry.ID != excludeID {
			return false
		}
	}
	return true
}

// CheckSlug generates the slug for baseText and enforces uniqueness against
// the collection. Returns a BadRequest error when another record already owns
// the computed slug.
func CheckSlug(baseText string, entries []SlugEntry, excludeID string) (string, error) {
	finalSlug := GenerateSlug(baseText)

	if !IsSlugUnique(finalSlug, entries, excludeID) {
		return "", errors.BadRequest(fmt.Sprintf("Slug '%s' already exists", finalSlug), nil)
	}

	return finalSlug, nil
}
