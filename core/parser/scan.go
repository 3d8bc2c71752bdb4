// ABOUTME: Tolerant tag-block scanner shared by every feed parser
// ABOUTME: Works on explicit byte offsets; never fails, only finds less

package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	htmlutil "stackpages-api/pkg/utils/html"
)

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
)

// document pairs raw markup with an ASCII-lowercased copy of the same length,
// so case-insensitive searches on lower yield offsets valid in raw.
type document struct {
	raw   string
	lower string
}

func newDocument(s string) document {
	return document{raw: s, lower: asciiLower(s)}
}

func (d document) slice(start, end int) document {
	return document{raw: d.raw[start:end], lower: d.lower[start:end]}
}

// element is one matched <tag ...>...</tag> span
type element struct {
	start        int // offset of '<' of the open tag
	contentStart int
	contentEnd   int
	end          int // offset just past the close tag
}

func (e element) selfClosing() bool {
	return e.end == e.contentStart
}

// find locates the first <tag ...>...</tag> at or after from. The open tag may
// carry attributes. A self-closing open tag yields an empty element.
// Occurrences inside CDATA sections are ignored, and a CDATA section directly
// inside the element is skipped over when looking for the close tag.
func (d document) find(tag string, from int) (element, bool) {
	tag = strings.ToLower(tag)
	open := "<" + tag
	closeTag := "</" + tag

	for from < len(d.lower) {
		i := strings.Index(d.lower[from:], open)
		if i < 0 {
			return element{}, false
		}
		start := from + i

		// Markup inside a CDATA section is text, not an element
		if c := strings.Index(d.raw[from:start], cdataOpen); c >= 0 {
			bodyStart := from + c + len(cdataOpen)
			j := strings.Index(d.raw[bodyStart:], cdataClose)
			if j < 0 {
				return element{}, false
			}
			from = bodyStart + j + len(cdataClose)
			continue
		}

		nameEnd := start + len(open)
		if nameEnd >= len(d.lower) || !isNameBoundary(d.lower[nameEnd]) {
			from = start + 1
			continue
		}

		gt := strings.IndexByte(d.lower[nameEnd:], '>')
		if gt < 0 {
			return element{}, false
		}
		contentStart := nameEnd + gt + 1
		if d.lower[contentStart-2] == '/' {
			return element{start: start, contentStart: contentStart, contentEnd: contentStart, end: contentStart}, true
		}

		searchFrom := contentStart
		body := strings.TrimLeft(d.raw[contentStart:], " \t\r\n")
		if strings.HasPrefix(body, cdataOpen) {
			cdataStart := len(d.raw) - len(body)
			if j := strings.Index(d.raw[cdataStart:], cdataClose); j >= 0 {
				searchFrom = cdataStart + j + len(cdataClose)
			}
		}

		closeStart, closeEnd, ok := d.findClose(closeTag, searchFrom)
		if !ok {
			return element{}, false
		}
		return element{start: start, contentStart: contentStart, contentEnd: closeStart, end: closeEnd}, true
	}
	return element{}, false
}

// findClose locates "</tag" followed by optional whitespace and '>'
func (d document) findClose(closeTag string, from int) (int, int, bool) {
	for from < len(d.lower) {
		i := strings.Index(d.lower[from:], closeTag)
		if i < 0 {
			return 0, 0, false
		}
		start := from + i
		j := start + len(closeTag)
		for j < len(d.lower) && isSpace(d.lower[j]) {
			j++
		}
		if j < len(d.lower) && d.lower[j] == '>' {
			return start, j + 1, true
		}
		from = start + 1
	}
	return 0, 0, false
}

// blocks returns the inner content of every non-overlapping <tag>...</tag>.
// Self-closing occurrences carry no content and are skipped.
func (d document) blocks(tag string) []document {
	var out []document
	pos := 0
	for {
		el, ok := d.find(tag, pos)
		if !ok {
			return out
		}
		pos = el.end
		if el.selfClosing() {
			continue
		}
		out = append(out, d.slice(el.contentStart, el.contentEnd))
	}
}

// inner returns the raw content of the first <tag> element that has content.
// Self-closing occurrences, such as <link href="..." type="audio/mpeg"/>, are
// passed over; when they are the only ones the tag counts as present but empty.
func (d document) inner(tag string) (document, bool) {
	var first element
	found := false
	pos := 0
	for {
		el, ok := d.find(tag, pos)
		if !ok {
			break
		}
		if !el.selfClosing() {
			return d.slice(el.contentStart, el.contentEnd), true
		}
		if !found {
			first, found = el, true
		}
		pos = el.end
	}
	if !found {
		return document{}, false
	}
	return d.slice(first.contentStart, first.contentEnd), true
}

// text returns the first <tag> element's content with CDATA unwrapped and
// entities decoded. Reports false when the tag is absent.
func (d document) text(tag string) (string, bool) {
	in, ok := d.inner(tag)
	if !ok {
		return "", false
	}
	return cleanText(in.raw), true
}

// textOr returns text(tag), or "" when the tag is absent
func (d document) textOr(tag string) string {
	s, _ := d.text(tag)
	return s
}

// without returns the document with every <tag>...</tag> span removed
func (d document) without(tag string) document {
	var raw strings.Builder
	pos, last := 0, 0
	for {
		el, ok := d.find(tag, pos)
		if !ok {
			break
		}
		raw.WriteString(d.raw[last:el.start])
		pos, last = el.end, el.end
	}
	raw.WriteString(d.raw[last:])
	return newDocument(raw.String())
}

// fingerprint is a short stable digest of the block, used when no other
// identifier can be derived
func (d document) fingerprint() string {
	sum := sha256.Sum256([]byte(d.raw))
	return hex.EncodeToString(sum[:6])
}

// cleanText trims, unwraps every CDATA section and decodes entities
func cleanText(s string) string {
	return htmlutil.DecodeEntities(unwrapCDATA(strings.TrimSpace(s)))
}

// unwrapCDATA replaces each <![CDATA[...]]> section with its content. An
// unterminated section keeps everything after the marker.
func unwrapCDATA(s string) string {
	if !strings.Contains(s, cdataOpen) {
		return s
	}

	var b strings.Builder
	for {
		i := strings.Index(s, cdataOpen)
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		s = s[i+len(cdataOpen):]
		j := strings.Index(s, cdataClose)
		if j < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:j])
		s = s[j+len(cdataClose):]
	}
	return strings.TrimSpace(b.String())
}

func isNameBoundary(c byte) bool {
	return c == '>' || c == '/' || isSpace(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
