// Package goquery provides a goquery-based implementation of
// warmline.Capturer for extracting visible page text.
package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/warmlinehq/warmline"
	"golang.org/x/net/html"
)

// Ensure Capturer implements warmline.Capturer at compile time.
var _ warmline.Capturer = (*Capturer)(nil)

// Capturer extracts the visible text of a page from its rendered HTML.
// It works on a parsed copy of the document and never mutates the input.
type Capturer struct{}

// NewCapturer creates a new Capturer.
func NewCapturer() *Capturer {
	return &Capturer{}
}

// Capture produces a PageCapture from rendered HTML. Anchors pointing at
// professional-network profiles or mailto addresses are rewritten so the
// destination URL appears inside the visible text, because plain rendered
// text alone drops these destinations.
func (c *Capturer) Capture(rawHTML, pageURL string) (*warmline.PageCapture, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, warmline.Errorf(warmline.ENOPAGE, "no page content to capture")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, warmline.Errorf(warmline.ENOPAGE, "failed to parse page: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	// Remove non-visible noise before collecting text.
	doc.Find("script, style, noscript, title").Remove()

	annotateContactLinks(doc)

	text := visibleText(doc)
	if len(text) > warmline.MaxCaptureText {
		// Back the cut off to a rune boundary so a multi-byte rune
		// straddling the limit is dropped whole, not split.
		cut := warmline.MaxCaptureText
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + warmline.TruncationMarker
	}

	return &warmline.PageCapture{
		Text:  text,
		URL:   pageURL,
		Title: title,
	}, nil
}

// annotateContactLinks inlines contact URLs into the link text, producing
// "<link text> [<href>]". Anchors with empty, fragment-only, or
// script-pseudo destinations are left untouched.
func annotateContactLinks(doc *goquery.Document) {
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript") {
			return
		}
		if !isContactHref(href) {
			return
		}
		sel.SetText(fmt.Sprintf("%s [%s]", strings.TrimSpace(sel.Text()), href))
	})
}

// isContactHref reports whether a destination is worth surfacing in the
// captured text: a professional-network profile URL or a mail link.
func isContactHref(href string) bool {
	lower := strings.ToLower(href)
	return strings.Contains(lower, "linkedin.com") || strings.HasPrefix(lower, "mailto:")
}

// visibleText collects trimmed text nodes in document order, one per line.
func visibleText(doc *goquery.Document) string {
	var lines []string
	for _, node := range doc.Selection.Nodes {
		collectText(node, &lines)
	}
	return strings.Join(lines, "\n")
}

func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*lines = append(*lines, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, lines)
	}
}
