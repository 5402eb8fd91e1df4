package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/persona-sh/personas-site-go/internal/domain"
	"github.com/persona-sh/personas-site-go/internal/service/cache"
)

// countingTransport counts round trips so tests can prove that
// unsupported URLs never reach the network.
type countingTransport struct {
	calls int64
	inner http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&t.calls, 1)
	return t.inner.RoundTrip(req)
}

func newTestClient(t *testing.T, api, raw string) (*Client, *countingTransport) {
	t.Helper()
	transport := &countingTransport{inner: http.DefaultTransport}
	httpClient := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	c := NewClient(httpClient, cache.NewMemoryCache(time.Hour), zap.NewNop(),
		WithBaseURLs(api, raw))
	return c, transport
}

func TestParseRepoURL(t *testing.T) {
	cases := []struct {
		url       string
		owner     string
		repo      string
		supported bool
	}{
		{"https://github.com/persona-sh/operator-copilot", "persona-sh", "operator-copilot", true},
		{"https://github.com/davidhariri/life-system.git", "davidhariri", "life-system", true},
		{"https://gist.github.com/minimaxir/23ee55a83633ac0b6b92de635291ad80", "", "", false},
		{"#", "", "", false},
		{"https://example.com/owner/repo", "", "", false},
	}
	for _, tc := range cases {
		owner, repo, ok := ParseRepoURL(tc.url)
		if ok != tc.supported || owner != tc.owner || repo != tc.repo {
			t.Fatalf("ParseRepoURL(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.url, owner, repo, ok, tc.owner, tc.repo, tc.supported)
		}
	}
}

func TestStarsReturnsCount(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/persona-sh/operator-copilot" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"stargazers_count": 42}`)
	}))
	defer api.Close()

	c, _ := newTestClient(t, api.URL, "http://unused.invalid")
	stars := c.Stars(context.Background(), "https://github.com/persona-sh/operator-copilot")
	if stars == nil || *stars != 42 {
		t.Fatalf("expected 42 stars, got %v", stars)
	}
}

func TestStarsUnsupportedHostSkipsNetwork(t *testing.T) {
	c, transport := newTestClient(t, "http://unused.invalid", "http://unused.invalid")

	if stars := c.Stars(context.Background(), "https://gist.github.com/minimaxir/abc"); stars != nil {
		t.Fatalf("gist URL should yield nil, got %v", stars)
	}
	if stars := c.Stars(context.Background(), "#"); stars != nil {
		t.Fatalf("sentinel URL should yield nil, got %v", stars)
	}
	if n := atomic.LoadInt64(&transport.calls); n != 0 {
		t.Fatalf("expected zero network calls, got %d", n)
	}
}

func TestStarsSwallowsServerErrors(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer api.Close()

	c, _ := newTestClient(t, api.URL, "http://unused.invalid")
	if stars := c.Stars(context.Background(), "https://github.com/x/y"); stars != nil {
		t.Fatalf("server error should degrade to nil, got %v", stars)
	}
}

func TestStarsUsesCacheOnSecondLookup(t *testing.T) {
	var hits int64
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		fmt.Fprint(w, `{"stargazers_count": 7}`)
	}))
	defer api.Close()

	c, _ := newTestClient(t, api.URL, "http://unused.invalid")
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if stars := c.Stars(ctx, "https://github.com/x/y"); stars == nil || *stars != 7 {
			t.Fatalf("lookup %d failed", i)
		}
	}
	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Fatalf("expected one upstream hit, got %d", n)
	}
}

func TestRepoFileFallsBackToMaster(t *testing.T) {
	raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/x/y/main/README.md":
			w.WriteHeader(http.StatusNotFound)
		case "/x/y/master/README.md":
			fmt.Fprint(w, "# hello from master")
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer raw.Close()

	c, _ := newTestClient(t, "http://unused.invalid", raw.URL)
	content, ok := c.RepoFile(context.Background(), "https://github.com/x/y", "README.md")
	if !ok || content != "# hello from master" {
		t.Fatalf("expected master fallback content, got (%q, %v)", content, ok)
	}
}

func TestRepoFileBothBranchesMissing(t *testing.T) {
	raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer raw.Close()

	c, _ := newTestClient(t, "http://unused.invalid", raw.URL)
	if content, ok := c.RepoFile(context.Background(), "https://github.com/x/y", "README.md"); ok {
		t.Fatalf("expected no content, got %q", content)
	}
}

func TestStarsBySlugJoinsParallelFetches(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/o/one":
			fmt.Fprint(w, `{"stargazers_count": 10}`)
		case "/repos/o/two":
			w.WriteHeader(http.StatusNotFound)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer api.Close()

	c, _ := newTestClient(t, api.URL, "http://unused.invalid")
	personas := []domain.PersonaEntry{
		{Slug: "one", Repository: "https://github.com/o/one"},
		{Slug: "two", Repository: "https://github.com/o/two"},
		{Slug: "three", Repository: "#"},
	}

	stars := c.StarsBySlug(context.Background(), personas)
	if len(stars) != 1 || stars["one"] != 10 {
		t.Fatalf("expected only {one: 10}, got %v", stars)
	}
}
