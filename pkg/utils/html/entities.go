// ABOUTME: HTML entity decoding for feed text fields
// ABOUTME: Resolves a fixed named-entity table plus any decimal or hex numeric entity

package html

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedEntities is the closed set of named entities DecodeEntities resolves.
// Any other named entity is left untouched.
var namedEntities = map[string]string{
	"nbsp": " ",
	"amp":  "&",
	"quot": "\"",
	"lt":   "<",
	"gt":   ">",
	"#39":  "'",
}

var entityPattern = regexp.MustCompile(`&(#?\w+);`)

// DecodeEntities resolves named and numeric HTML entities in a single pass.
// Decoding is not recursive: "&amp;lt;" becomes "&lt;".
func DecodeEntities(text string) string {
	if text == "" || !strings.Contains(text, "&") {
		return text
	}

	return entityPattern.ReplaceAllStringFunc(text, func(match string) string {
		entity := match[1 : len(match)-1]
		if strings.HasPrefix(entity, "#") {
			if r, ok := numericEntity(entity[1:]); ok {
				return string(r)
			}
			return match
		}
		if replacement, ok := namedEntities[entity]; ok {
			return replacement
		}
		return match
	})
}

// numericEntity parses the body of "&#NN;" or "&#xNN;"
func numericEntity(body string) (rune, bool) {
	base := 10
	if strings.HasPrefix(body, "x") || strings.HasPrefix(body, "X") {
		base = 16
		body = body[1:]
	}
	if body == "" {
		return 0, false
	}

	code, err := strconv.ParseInt(body, base, 32)
	if err != nil || code <= 0 {
		return 0, false
	}

	r := rune(code)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}
