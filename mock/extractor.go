package mock

import "github.com/shodoc/shodoc"

var _ shodoc.SourceExtractor = (*SourceExtractor)(nil)

// SourceExtractor is a mock implementation of shodoc.SourceExtractor.
type SourceExtractor struct {
	ExtractFn func(path string) (*shodoc.SourceMetadata, error)
}

func (e *SourceExtractor) Extract(path string) (*shodoc.SourceMetadata, error) {
	return e.ExtractFn(path)
}

var _ shodoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of shodoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*shodoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*shodoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ shodoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of shodoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
