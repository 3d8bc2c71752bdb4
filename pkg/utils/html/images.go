// ABOUTME: Image discovery heuristics for feed items
// ABOUTME: First <img> in a body, or an <enclosure> typed image/*

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractFirstImage returns the src of the first <img> in body. Later images
// are ignored.
func ExtractFirstImage(body string) (string, bool) {
	if !strings.Contains(strings.ToLower(body), "<img") {
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", false
	}

	var src string
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src = strings.TrimSpace(s.AttrOr("src", ""))
		return src == ""
	})
	return src, src != ""
}

// ExtractEnclosureImage returns the url of the first <enclosure> whose type
// begins with "image/".
func ExtractEnclosureImage(block string) (string, bool) {
	return FindAttr(block, "enclosure", "url", TypePrefix("image/"))
}
