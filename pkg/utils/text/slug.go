// ABOUTME: URL slug derivation for feed items
// ABOUTME: Transliterates to ASCII, then collapses everything outside [a-z0-9] into hyphens

package text

import (
	"strings"

	"github.com/gosimple/unidecode"
)

// Slugify lowercases text and replaces every run of characters outside
// [a-z0-9] with a single hyphen, trimming hyphens at both ends. Accented
// letters are transliterated first so "Café" becomes "cafe". Empty input
// yields an empty slug.
func Slugify(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	ascii := strings.ToLower(unidecode.Unidecode(text))

	var b strings.Builder
	b.Grow(len(ascii))
	pendingHyphen := false
	for i := 0; i < len(ascii); i++ {
		c := ascii[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteByte(c)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// FirstSlug returns the slug of the first candidate that produces a non-empty one
func FirstSlug(candidates ...string) string {
	for _, c := range candidates {
		if s := Slugify(c); s != "" {
			return s
		}
	}
	return ""
}
