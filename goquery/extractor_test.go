package goquery_test

import (
	"testing"

	"github.com/shodoc/shodoc"
	"github.com/shodoc/shodoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>acme/alpha</title></head><body>
<nav>navigation chrome</nav>
<article class="markdown-body"><h1>Alpha</h1><p>The docs.</p></article>
<footer>footer chrome</footer>
</body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "acme/alpha", result.Title)
	assert.Contains(t, result.ContentHTML, "<h1>Alpha</h1>")
	assert.NotContains(t, result.ContentHTML, "navigation chrome")
	assert.NotContains(t, result.ContentHTML, "footer chrome")
}

func TestExtractor_Extract_FallsBackToMain(t *testing.T) {
	t.Parallel()

	html := `<html><body><main><p>content in main</p></main></body></html>`

	result, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "content in main")
}

func TestExtractor_Extract_NoMatchYieldsEmptyContent(t *testing.T) {
	t.Parallel()

	result, err := goquery.NewExtractor().Extract("<html><body><div>plain</div></body></html>")

	require.NoError(t, err)
	assert.Empty(t, result.ContentHTML)
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := goquery.NewExtractor().Extract("   ")

	require.Error(t, err)
	assert.Equal(t, shodoc.EINVALID, shodoc.ErrorCode(err))
}
