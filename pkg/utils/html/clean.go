// ABOUTME: Cosmetic cleanup of feed body HTML
// ABOUTME: Not a sanitizer; scripts and other active content pass through

package html

import "regexp"

var (
	// Substack wraps inline images in an "expand" anchor that renders as a
	// stray button outside its own stylesheet.
	expandAnchorPattern = regexp.MustCompile(`(?is)<a\s+[^>]*class=["'][^"']*image-link-expand[^"']*["'][^>]*>.*?</a>`)
	styleAttrPattern    = regexp.MustCompile(`(?i)\s+style=(?:"[^"]*"|'[^']*')`)
)

// CleanContent strips image-link-expand anchors and every inline style="..."
// attribute from body.
func CleanContent(body string) string {
	if body == "" {
		return ""
	}
	cleaned := expandAnchorPattern.ReplaceAllString(body, "")
	return styleAttrPattern.ReplaceAllString(cleaned, "")
}
