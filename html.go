package shodoc

// ExtractResult holds the content extracted from a rendered-HTML README.
type ExtractResult struct {
	// Title is the page title recovered from metadata, if any.
	Title string

	// ContentHTML is the README content as clean HTML with page chrome
	// (navigation, footers, anchors) removed.
	ContentHTML string
}

// Extractor extracts README content from HTML pages, removing boilerplate.
// It is used when a repository serves its README as rendered HTML rather
// than raw Markdown.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into Markdown.
	Convert(html string) (string, error)
}
