// Package trafilatura provides a readability-based shodoc.Extractor used as
// the fallback when selector-based extraction finds nothing.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/shodoc/shodoc"
	"golang.org/x/net/html"
)

// Ensure Extractor implements shodoc.Extractor at compile time.
var _ shodoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to recover main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*shodoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, shodoc.Errorf(shodoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, shodoc.Errorf(shodoc.EINVALID, "readability extraction failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &shodoc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
