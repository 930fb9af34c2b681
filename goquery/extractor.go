// Package goquery provides a selector-based shodoc.Extractor for
// rendered-HTML READMEs, such as the HTML GitHub serves for repositories
// whose README is not plain Markdown.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shodoc/shodoc"
)

// contentSelectors are probed in order; the first match with content wins.
// GitHub wraps rendered READMEs in article.markdown-body.
var contentSelectors = []string{
	"article.markdown-body",
	".markdown-body",
	"article",
	"main",
}

// Ensure Extractor implements shodoc.Extractor at compile time.
var _ shodoc.Extractor = (*Extractor)(nil)

// Extractor extracts README content from HTML using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the README content as clean HTML. A document where no
// selector matches yields an empty ContentHTML, letting the caller fall
// through to the next extractor in its chain.
func (e *Extractor) Extract(rawHTML string) (*shodoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, shodoc.Errorf(shodoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, shodoc.Errorf(shodoc.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &shodoc.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		html, err := goquery.OuterHtml(sel)
		if err != nil {
			continue
		}
		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		result.ContentHTML = html
		return result, nil
	}

	return result, nil
}
