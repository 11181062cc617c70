// Package slug builds and checks URL-safe path segments.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	validPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonAlnum     = regexp.MustCompile(`[^a-z0-9]+`)
)

// Make lowercases s, folds accents ("Café" -> "cafe") and joins words with single hyphens.
func Make(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = strings.ReplaceAll(folded, "&", " and ")
	return strings.Trim(nonAlnum.ReplaceAllString(folded, "-"), "-")
}

// IsValid reports whether s is already a normalised slug.
// The root page uses the literal slug "home".
func IsValid(s string) bool {
	return validPattern.MatchString(s)
}
