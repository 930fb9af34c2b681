package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/shodoc/shodoc"
	"github.com/shodoc/shodoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Alpha README</title></head><body>
<nav><a href="/">home</a><a href="/about">about</a></nav>
<article>
<h1>Alpha</h1>
<p>Alpha is a tool for building LLM-powered applications. It supports
streaming responses, tool calling, and structured output parsing across
multiple model providers.</p>
<p>Install it with the usual go install incantation and configure it with a
single YAML file. The README goes on long enough for readability heuristics
to identify this article as the main content of the page.</p>
</article>
<footer>copyright notice</footer>
</body></html>`

	result, err := trafilatura.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "LLM-powered applications")
	assert.NotContains(t, result.ContentHTML, "copyright notice")
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := trafilatura.NewExtractor().Extract("   \n  ")

	require.Error(t, err)
	assert.Equal(t, shodoc.EINVALID, shodoc.ErrorCode(err))
}

func TestExtractor_Extract_TinyDocument(t *testing.T) {
	t.Parallel()

	// Documents with no extractable main content must fail cleanly or
	// return an empty result, never panic.
	result, err := trafilatura.NewExtractor().Extract("<html><body></body></html>")
	if err != nil {
		return
	}
	assert.Empty(t, strings.TrimSpace(result.ContentHTML))
}
