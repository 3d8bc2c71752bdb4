// ABOUTME: Attribute lookups on tags inside loosely structured markup
// ABOUTME: Uses the x/net/html tokenizer so attribute order and quoting don't matter

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Attrs is the attribute set of one tag, keyed by lowercased attribute name
type Attrs map[string]string

// FindTag returns the attributes of the first start or self-closing tag named
// name for which match returns true. A nil match accepts the first tag.
// Tag names are compared case-insensitively and may carry a namespace prefix
// such as "media:thumbnail". Markup inside CDATA sections is not searched.
func FindTag(markup, name string, match func(Attrs) bool) (Attrs, bool) {
	name = strings.ToLower(name)
	z := html.NewTokenizer(strings.NewReader(markup))
	z.AllowCDATA(true)

	for {
		switch z.Next() {
		case html.ErrorToken:
			return nil, false
		case html.StartTagToken, html.SelfClosingTagToken:
			tagName, hasAttr := z.TagName()
			if string(tagName) != name {
				continue
			}
			attrs := Attrs{}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				attrs[string(key)] = string(val)
			}
			if match == nil || match(attrs) {
				return attrs, true
			}
		}
	}
}

// FindAttr returns the trimmed, non-empty value of attr on the first tag named
// name that carries it and satisfies match.
func FindAttr(markup, name, attr string, match func(Attrs) bool) (string, bool) {
	attrs, ok := FindTag(markup, name, func(a Attrs) bool {
		if strings.TrimSpace(a[attr]) == "" {
			return false
		}
		return match == nil || match(a)
	})
	if !ok {
		return "", false
	}
	return strings.TrimSpace(attrs[attr]), true
}

// TypePrefix matches tags whose type attribute starts with prefix, ignoring case
func TypePrefix(prefix string) func(Attrs) bool {
	prefix = strings.ToLower(prefix)
	return func(a Attrs) bool {
		return strings.HasPrefix(strings.ToLower(strings.TrimSpace(a["type"])), prefix)
	}
}
