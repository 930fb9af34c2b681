// Package github provides a GitHub-backed implementation of
// shodoc.ReadmeFetcher. It prefers the REST readme endpoint and falls back
// to raw.githubusercontent.com over a list of candidate README filenames.
package github

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/shodoc/shodoc"
)

// DefaultFetchTimeout is the default per-attempt timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultRawBaseURL = "https://raw.githubusercontent.com"
)

// userAgent identifies the tool to GitHub; requests without one are refused.
const userAgent = "shodoc"

var repoURLRe = regexp.MustCompile(`github\.com[/:]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// readmeNames are the candidate filenames probed on the raw fallback,
// in preference order.
var readmeNames = []string{"README.md", "README.markdown", "README.rst", "README"}

// branches are probed in order on the raw fallback.
var branches = []string{"main", "master"}

// ParseRepoURL extracts the owner and repository name from a github.com URL.
// Trailing slashes and ".git" suffixes are tolerated.
// Returns EINVALID if the URL does not reference a GitHub repository.
func ParseRepoURL(rawURL string) (owner, repo string, err error) {
	m := repoURLRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", "", shodoc.Errorf(shodoc.EINVALID, "could not parse repository URL %q", rawURL)
	}
	return m[1], m[2], nil
}

// Ensure Fetcher implements shodoc.ReadmeFetcher at compile time.
var _ shodoc.ReadmeFetcher = (*Fetcher)(nil)

// Fetcher retrieves README content for GitHub repositories.
//
// Failure classification follows the fallback chain's retry policy:
// responses indicating an exhausted rate limit map to ERATELIMIT (the only
// retryable class); missing READMEs map to ENOTFOUND and every other
// network or HTTP failure to EUNAVAILABLE.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	token      string
	apiBaseURL string
	rawBaseURL string
	limiter    shodoc.HostLimiter
	extractors []shodoc.Extractor
	converter  shodoc.Converter
	logger     *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout for HTTP requests.
// Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithToken sets the bearer token for the GitHub API. Optional; anonymous
// requests work but are rate limited far more aggressively.
func WithToken(token string) Option {
	return func(f *Fetcher) { f.token = token }
}

// WithAPIBaseURL overrides the GitHub API base URL. Used in tests.
func WithAPIBaseURL(u string) Option {
	return func(f *Fetcher) { f.apiBaseURL = u }
}

// WithRawBaseURL overrides the raw content base URL. Used in tests.
func WithRawBaseURL(u string) Option {
	return func(f *Fetcher) { f.rawBaseURL = u }
}

// WithLimiter sets the per-host rate limiter applied before each request.
func WithLimiter(l shodoc.HostLimiter) Option {
	return func(f *Fetcher) { f.limiter = l }
}

// WithHTMLPipeline configures the extractor chain and converter used when a
// repository serves its README as rendered HTML instead of Markdown.
// Extractors are tried in order; the first non-empty result wins.
func WithHTMLPipeline(converter shodoc.Converter, extractors ...shodoc.Extractor) Option {
	return func(f *Fetcher) {
		f.converter = converter
		f.extractors = extractors
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = logger }
}

// NewFetcher creates a GitHub README fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:    DefaultFetchTimeout,
		apiBaseURL: defaultAPIBaseURL,
		rawBaseURL: defaultRawBaseURL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch retrieves the README for the repository as Markdown.
func (f *Fetcher) Fetch(ctx context.Context, repoURL string) (string, error) {
	owner, repo, err := ParseRepoURL(repoURL)
	if err != nil {
		return "", err
	}

	content, err := f.fetchAPI(ctx, owner, repo)
	if err == nil {
		return f.finalize(content)
	}
	if shodoc.ErrorCode(err) == shodoc.ERATELIMIT {
		return "", err
	}
	f.logger.Debug("api readme fetch failed, trying raw fallback",
		"repo", owner+"/"+repo,
		"error", shodoc.ErrorMessage(err),
	)

	content, err = f.fetchRaw(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	return f.finalize(content)
}

// fetchAPI requests the README through the GitHub REST readme endpoint.
func (f *Fetcher) fetchAPI(ctx context.Context, owner, repo string) (string, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/readme", f.apiBaseURL, owner, repo)

	if err := f.wait(ctx, endpoint); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.raw+json")
	req.Header.Set("User-Agent", userAgent)
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", shodoc.Errorf(shodoc.EUNAVAILABLE, "readme request failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", shodoc.Errorf(shodoc.EUNAVAILABLE, "reading readme body: %v", err)
		}
		return string(body), nil

	case isRateLimited(resp):
		return "", shodoc.Errorf(shodoc.ERATELIMIT, "rate limit exceeded for %s/%s", owner, repo)

	case resp.StatusCode == http.StatusNotFound:
		return "", shodoc.Errorf(shodoc.ENOTFOUND, "no readme for %s/%s", owner, repo)

	default:
		return "", shodoc.Errorf(shodoc.EUNAVAILABLE, "HTTP %d for %s/%s readme", resp.StatusCode, owner, repo)
	}
}

// fetchRaw probes raw.githubusercontent.com over candidate branches and
// README filenames. Every miss falls through to the next candidate.
func (f *Fetcher) fetchRaw(ctx context.Context, owner, repo string) (string, error) {
	for _, branch := range branches {
		for _, name := range readmeNames {
			rawURL := fmt.Sprintf("%s/%s/%s/%s/%s", f.rawBaseURL, owner, repo, branch, name)

			if err := f.wait(ctx, rawURL); err != nil {
				return "", err
			}

			content, err := f.fetchRawFile(ctx, rawURL)
			if err != nil {
				f.logger.Debug("raw readme candidate miss",
					"url", rawURL,
					"error", shodoc.ErrorMessage(err),
				)
				continue
			}
			return content, nil
		}
	}
	return "", shodoc.Errorf(shodoc.ENOTFOUND, "no readme found for %s/%s", owner, repo)
}

func (f *Fetcher) fetchRawFile(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", shodoc.Errorf(shodoc.EUNAVAILABLE, "raw request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", shodoc.Errorf(shodoc.ENOTFOUND, "HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", shodoc.Errorf(shodoc.EUNAVAILABLE, "reading raw body: %v", err)
	}
	return string(body), nil
}

// finalize converts rendered-HTML README content to Markdown when the HTML
// pipeline is configured; Markdown content passes through verbatim.
func (f *Fetcher) finalize(content string) (string, error) {
	if !looksLikeHTML(content) {
		return content, nil
	}
	if f.converter == nil || len(f.extractors) == 0 {
		return "", shodoc.Errorf(shodoc.EINVALID, "readme is HTML and no conversion pipeline is configured")
	}

	for _, ex := range f.extractors {
		result, err := ex.Extract(content)
		if err != nil || result.ContentHTML == "" {
			continue
		}
		md, err := f.converter.Convert(result.ContentHTML)
		if err != nil {
			continue
		}
		return md, nil
	}
	return "", shodoc.Errorf(shodoc.EINVALID, "could not extract readme content from HTML")
}

func (f *Fetcher) wait(ctx context.Context, rawURL string) error {
	if f.limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return f.limiter.Wait(ctx, u.Host)
}

// isRateLimited reports whether the response indicates an exhausted rate
// limit rather than an ordinary authorization failure. GitHub signals this
// with 403 plus a zeroed X-RateLimit-Remaining header, 429, or Retry-After.
func isRateLimited(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	if resp.StatusCode != http.StatusForbidden {
		return false
	}
	return resp.Header.Get("X-RateLimit-Remaining") == "0" || resp.Header.Get("Retry-After") != ""
}

// looksLikeHTML reports whether content is an HTML document rather than
// Markdown.
func looksLikeHTML(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}
