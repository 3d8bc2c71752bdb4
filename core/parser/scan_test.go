package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentText(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		tag    string
		want   string
		wantOK bool
	}{
		{"plain", `<title>Hello</title>`, "title", "Hello", true},
		{"attributes", `<guid isPermaLink="false">abc</guid>`, "guid", "abc", true},
		{"case insensitive", `<TITLE>Loud</Title>`, "title", "Loud", true},
		{"cdata", `<title><![CDATA[Rock & Roll]]></title>`, "title", "Rock & Roll", true},
		{"cdata hiding close tag", `<description><![CDATA[x</description>y]]></description>`, "description", "x</description>y", true},
		{"entities", `<title>A &amp; B &#39;q&#39;</title>`, "title", "A & B 'q'", true},
		{"namespaced", `<yt:videoId>abc</yt:videoId>`, "yt:videoId", "abc", true},
		{"prefix is not a match", `<titles>no</titles><title>yes</title>`, "title", "yes", true},
		{"namespaced is not plain", `<media:title>m</media:title>`, "title", "", false},
		{"self closing", `<link href="x"/>`, "link", "", true},
		{"self closing before content", `<link href="a.mp3" type="audio/mpeg"/><link>https://site/ep</link>`, "link", "https://site/ep", true},
		{"markup inside cdata is text", `<description><![CDATA[<title>Fake</title>]]></description><title>Real</title>`, "title", "Real", true},
		{"only cdata markup", `<description><![CDATA[<title>Fake</title>]]></description>`, "title", "", false},
		{"whitespace in close tag", `<title>ok</title >`, "title", "ok", true},
		{"absent", `<item></item>`, "title", "", false},
		{"unterminated", `<title>never closed`, "title", "", false},
		{"empty input", ``, "title", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := newDocument(tt.markup).text(tt.tag)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentBlocks(t *testing.T) {
	markup := `<item>a</item><item type="x">b</item><item/><ITEM>c</ITEM><itemized>no</itemized>`

	blocks := newDocument(markup).blocks("item")

	var got []string
	for _, b := range blocks {
		got = append(got, b.raw)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestDocumentWithout(t *testing.T) {
	markup := `<title>Channel</title><item><title>Item</title></item><link>l</link>`

	header := newDocument(markup).without("item")

	assert.Equal(t, `<title>Channel</title><link>l</link>`, header.raw)
	assert.Equal(t, "Channel", header.textOr("title"))
}

func TestUnwrapCDATA(t *testing.T) {
	assert.Equal(t, "ab", unwrapCDATA("<![CDATA[a]]><![CDATA[b]]>"))
	assert.Equal(t, "keep", unwrapCDATA("keep"))
	assert.Equal(t, "open", unwrapCDATA("<![CDATA[open"))
}

func TestFingerprint_Stable(t *testing.T) {
	a := newDocument("<title></title>").fingerprint()
	b := newDocument("<title></title>").fingerprint()
	c := newDocument("<link></link>").fingerprint()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 12)
}
