// Package github is the repository metadata gateway: star counts and raw
// file contents for catalog entries hosted on GitHub. Every failure path
// degrades to "no data"; this package must never make a page fail.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/persona-sh/personas-site-go/internal/domain"
	"github.com/persona-sh/personas-site-go/internal/service/cache"
	"github.com/persona-sh/personas-site-go/pkg/errors"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultRawBaseURL = "https://raw.githubusercontent.com"

	// Star counts and README blobs revalidate on a one-hour horizon.
	metadataTTL = time.Hour

	// Bound on concurrent outbound calls for the listing-wide star fetch.
	starFetchConcurrency = 8
)

var repoPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// ParseRepoURL extracts owner and repo from a github.com URL. Gist URLs
// and anything not matching host/owner/repo are unsupported and report
// ok=false without any network activity. A trailing ".git" is stripped.
func ParseRepoURL(repoURL string) (owner, repo string, ok bool) {
	if strings.Contains(repoURL, "gist.github.com") {
		return "", "", false
	}
	m := repoPattern.FindStringSubmatch(repoURL)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSuffix(m[2], ".git"), true
}

// Branches probed for raw files, in preference order.
var branchOrder = []string{"main", "master"}

type Client struct {
	httpClient *http.Client
	cache      cache.Cache
	logger     *zap.Logger
	token      string
	apiBaseURL string
	rawBaseURL string
}

type Option func(*Client)

// WithBaseURLs overrides the GitHub endpoints, for tests.
func WithBaseURLs(api, raw string) Option {
	return func(c *Client) {
		c.apiBaseURL = strings.TrimRight(api, "/")
		c.rawBaseURL = strings.TrimRight(raw, "/")
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func NewClient(httpClient *http.Client, cacheSvc cache.Cache, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		cache:      cacheSvc,
		logger:     logger,
		apiBaseURL: defaultAPIBaseURL,
		rawBaseURL: defaultRawBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stars returns the repository star count, or nil when the URL is not a
// supported repo URL or the lookup fails for any reason.
func (c *Client) Stars(ctx context.Context, repoURL string) *int {
	owner, repo, ok := ParseRepoURL(repoURL)
	if !ok {
		return nil
	}

	cacheKey := fmt.Sprintf("github:stars:%s/%s", owner, repo)
	var cached int
	if hit, err := c.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/%s", c.apiBaseURL, owner, repo))
	if err != nil {
		c.logger.Warn("Star lookup failed",
			zap.String("repo", owner+"/"+repo),
			zap.Error(err),
		)
		return nil
	}

	var payload struct {
		StargazersCount *int `json:"stargazers_count"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.StargazersCount == nil {
		c.logger.Warn("Star response malformed", zap.String("repo", owner+"/"+repo))
		return nil
	}

	_ = c.cache.Set(ctx, cacheKey, *payload.StargazersCount, metadataTTL)
	return payload.StargazersCount
}

// RepoFile fetches the raw contents of filename, probing the main branch
// first and master second. The first success wins; both failing means
// (empty, false).
func (c *Client) RepoFile(ctx context.Context, repoURL, filename string) (string, bool) {
	owner, repo, ok := ParseRepoURL(repoURL)
	if !ok {
		return "", false
	}

	cacheKey := fmt.Sprintf("github:file:%s/%s/%s", owner, repo, filename)
	var cached string
	if hit, err := c.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, true
	}

	for _, branch := range branchOrder {
		body, err := c.get(ctx, fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBaseURL, owner, repo, branch, filename))
		if err != nil {
			continue
		}
		content := string(body)
		_ = c.cache.Set(ctx, cacheKey, content, metadataTTL)
		return content, true
	}

	c.logger.Debug("Raw file unavailable on any branch",
		zap.String("repo", owner+"/"+repo),
		zap.String("file", filename),
	)
	return "", false
}

// StarsBySlug fetches star counts for every persona in parallel and joins
// the results. Personas without a usable count are simply absent from the
// map; the caller ranks them as zero.
func (c *Client) StarsBySlug(ctx context.Context, personas []domain.PersonaEntry) map[string]int {
	var mu sync.Mutex
	stars := make(map[string]int, len(personas))

	p := pool.New().WithMaxGoroutines(starFetchConcurrency)
	for _, persona := range personas {
		p.Go(func() {
			if count := c.Stars(ctx, persona.Repository); count != nil {
				mu.Lock()
				stars[persona.Slug] = *count
				mu.Unlock()
			}
		})
	}
	p.Wait()

	return stars
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewAPIError(
			fmt.Sprintf("unexpected status %d", resp.StatusCode),
			resp.StatusCode,
			map[string]any{"url": url},
		)
	}

	return io.ReadAll(resp.Body)
}
