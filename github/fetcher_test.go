package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shodoc/shodoc"
	"github.com/shodoc/shodoc/github"
	"github.com/shodoc/shodoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "https URL",
			url:       "https://github.com/acme/alpha",
			wantOwner: "acme",
			wantRepo:  "alpha",
		},
		{
			name:      "trailing slash",
			url:       "https://github.com/acme/alpha/",
			wantOwner: "acme",
			wantRepo:  "alpha",
		},
		{
			name:      "git suffix",
			url:       "https://github.com/acme/alpha.git",
			wantOwner: "acme",
			wantRepo:  "alpha",
		},
		{
			name:      "ssh style",
			url:       "git@github.com:acme/alpha.git",
			wantOwner: "acme",
			wantRepo:  "alpha",
		},
		{
			name:    "not a github URL",
			url:     "https://example.com/acme/alpha",
			wantErr: true,
		},
		{
			name:    "missing repo segment",
			url:     "https://github.com/acme",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			owner, repo, err := github.ParseRepoURL(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, shodoc.EINVALID, shodoc.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestFetcher_Fetch_APISuccess(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/alpha/readme", r.URL.Path)
		assert.Equal(t, "application/vnd.github.raw+json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("# Alpha\n\nThe README."))
	}))
	defer api.Close()

	f := github.NewFetcher(
		github.WithAPIBaseURL(api.URL),
		github.WithToken("secret"),
	)

	content, err := f.Fetch(context.Background(), "https://github.com/acme/alpha")

	require.NoError(t, err)
	assert.Equal(t, "# Alpha\n\nThe README.", content)
}

func TestFetcher_Fetch_RateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		header map[string]string
	}{
		{
			name:   "403 with exhausted limit",
			status: http.StatusForbidden,
			header: map[string]string{"X-RateLimit-Remaining": "0"},
		},
		{
			name:   "429",
			status: http.StatusTooManyRequests,
		},
		{
			name:   "403 with retry-after",
			status: http.StatusForbidden,
			header: map[string]string{"Retry-After": "60"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			}))
			defer api.Close()

			f := github.NewFetcher(github.WithAPIBaseURL(api.URL))

			_, err := f.Fetch(context.Background(), "https://github.com/acme/alpha")

			require.Error(t, err)
			assert.Equal(t, shodoc.ERATELIMIT, shodoc.ErrorCode(err))
		})
	}
}

func TestFetcher_Fetch_PlainForbiddenIsNotRetryable(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "42")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer api.Close()
	raw := httptest.NewServer(http.NotFoundHandler())
	defer raw.Close()

	f := github.NewFetcher(
		github.WithAPIBaseURL(api.URL),
		github.WithRawBaseURL(raw.URL),
	)

	_, err := f.Fetch(context.Background(), "https://github.com/acme/alpha")

	require.Error(t, err)
	assert.Equal(t, shodoc.ENOTFOUND, shodoc.ErrorCode(err))
}

func TestFetcher_Fetch_RawFallback(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.NotFoundHandler())
	defer api.Close()

	raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// README.md is missing on main; present on master.
		if r.URL.Path == "/acme/alpha/master/README.md" {
			_, _ = w.Write([]byte("# Alpha from master"))
			return
		}
		http.NotFound(w, r)
	}))
	defer raw.Close()

	f := github.NewFetcher(
		github.WithAPIBaseURL(api.URL),
		github.WithRawBaseURL(raw.URL),
	)

	content, err := f.Fetch(context.Background(), "https://github.com/acme/alpha")

	require.NoError(t, err)
	assert.Equal(t, "# Alpha from master", content)
}

func TestFetcher_Fetch_NoReadmeAnywhere(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.NotFoundHandler())
	defer api.Close()
	raw := httptest.NewServer(http.NotFoundHandler())
	defer raw.Close()

	f := github.NewFetcher(
		github.WithAPIBaseURL(api.URL),
		github.WithRawBaseURL(raw.URL),
	)

	_, err := f.Fetch(context.Background(), "https://github.com/acme/alpha")

	require.Error(t, err)
	assert.Equal(t, shodoc.ENOTFOUND, shodoc.ErrorCode(err))
}

func TestFetcher_Fetch_InvalidURL(t *testing.T) {
	t.Parallel()

	f := github.NewFetcher()

	_, err := f.Fetch(context.Background(), "not-a-url")

	require.Error(t, err)
	assert.Equal(t, shodoc.EINVALID, shodoc.ErrorCode(err))
}

func TestFetcher_Fetch_HTMLReadmeConverted(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<!DOCTYPE html><html><body><article># hi</article></body></html>"))
	}))
	defer api.Close()

	extractor := &mock.Extractor{
		ExtractFn: func(html string) (*shodoc.ExtractResult, error) {
			return &shodoc.ExtractResult{ContentHTML: "<h1>hi</h1>"}, nil
		},
	}
	converter := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			assert.Equal(t, "<h1>hi</h1>", html)
			return "# hi", nil
		},
	}

	f := github.NewFetcher(
		github.WithAPIBaseURL(api.URL),
		github.WithHTMLPipeline(converter, extractor),
	)

	content, err := f.Fetch(context.Background(), "https://github.com/acme/alpha")

	require.NoError(t, err)
	assert.Equal(t, "# hi", content)
}

func TestFetcher_Fetch_HTMLWithoutPipelineFails(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>rendered</body></html>"))
	}))
	defer api.Close()

	f := github.NewFetcher(github.WithAPIBaseURL(api.URL))

	_, err := f.Fetch(context.Background(), "https://github.com/acme/alpha")

	require.Error(t, err)
	assert.Equal(t, shodoc.EINVALID, shodoc.ErrorCode(err))
}
