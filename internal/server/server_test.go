package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/persona-sh/personas-site-go/internal/catalog"
	"github.com/persona-sh/personas-site-go/internal/render"
	"github.com/persona-sh/personas-site-go/internal/service/cache"
	"github.com/persona-sh/personas-site-go/internal/service/github"
)

// fakeGitHub serves star counts and READMEs for any owner/repo so handler
// tests never touch the network.
func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/repos/"):
			fmt.Fprint(w, `{"stargazers_count": 7}`)
		case strings.HasSuffix(r.URL.Path, "/README.md"):
			fmt.Fprint(w, "# Fake Readme")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	gh := fakeGitHub(t)

	store := catalog.Default()
	pages, err := render.NewPages(store, "https://personas.sh")
	if err != nil {
		t.Fatalf("NewPages: %v", err)
	}
	client := github.NewClient(
		gh.Client(),
		cache.NewMemoryCache(time.Minute),
		zap.NewNop(),
		github.WithBaseURLs(gh.URL, gh.URL),
	)
	return NewHandler(store, pages, client, zap.NewNop(),
		"https://personas.sh", "https://example.com/issues/new")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newTestHandler(t).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func document(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("parse body: %v", err)
	}
	return doc
}

func TestHomeRoute(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	doc := document(t, resp)
	if doc.Find("h1").Length() == 0 {
		t.Error("home page missing heading")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestBrowseRouteFilters(t *testing.T) {
	srv := newTestServer(t)
	store := catalog.Default()

	resp := get(t, srv, "/browse")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	doc := document(t, resp)
	if got := doc.Find(".cards .card").Length(); got != store.Len() {
		t.Errorf("unfiltered cards = %d, want %d", got, store.Len())
	}

	want := len(catalog.Filter(store.Personas(), catalog.Query{Category: "developer"}))
	resp = get(t, srv, "/browse?category=developer")
	doc = document(t, resp)
	if got := doc.Find(".cards .card").Length(); got != want {
		t.Errorf("filtered cards = %d, want %d", got, want)
	}
}

func TestBrowseRouteNoResults(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/browse?q="+url.QueryEscape("zzz nothing matches"))
	doc := document(t, resp)
	if doc.Find(".cards .card").Length() != 0 {
		t.Error("expected zero cards")
	}
	if !strings.Contains(doc.Text(), "No personas match") {
		t.Error("no-results message missing")
	}
}

func TestPersonaRoute(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/persona/operator-copilot")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	doc := document(t, resp)
	if !strings.Contains(doc.Find("h1").First().Text(), "Operator") {
		t.Errorf("h1 = %q", doc.Find("h1").First().Text())
	}
	// The fake GitHub serves stars and a README for every repo.
	if !strings.Contains(doc.Text(), "★ 7") {
		t.Error("star count missing")
	}
	if doc.Find(".readme").Length() == 0 {
		t.Error("readme missing")
	}
}

func TestPersonaRouteUnknownSlug(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/persona/ghost")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	doc := document(t, resp)
	if !strings.Contains(doc.Text(), "ghost") {
		t.Error("404 page should name the slug")
	}
}

func TestCatalogJSONRoute(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/catalog.json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Cache-Control"); got != publicCacheControl {
		t.Errorf("Cache-Control = %q", got)
	}
	var doc render.CatalogDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Count != catalog.Default().Len() {
		t.Errorf("count = %d", doc.Count)
	}
	if doc.Count != len(doc.Personas) {
		t.Error("count does not match persona list")
	}
}

func TestLLMsRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/llms.txt")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("Cache-Control") != "" {
		t.Error("llms.txt should not set cache headers")
	}

	resp = get(t, srv, "/llms-full.txt")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Cache-Control"); got != publicCacheControl {
		t.Errorf("Cache-Control = %q", got)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
}

const validSubmitManifest = `name: test-persona
display_name: Test Persona
version: 1.0.0
description: A persona used by the submit tests.
author:
  name: Test Author
  github: testauthor
category: developer
tags: [testing, automation]
`

func TestSubmitRedirectsWithPrefilledIssue(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := client.PostForm(srv.URL+"/submit", url.Values{"manifest": {validSubmitManifest}})
	if err != nil {
		t.Fatalf("POST /submit: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	loc, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	if loc.Host != "example.com" {
		t.Errorf("redirect host = %q", loc.Host)
	}
	if got := loc.Query().Get("title"); got != "Add persona: test-persona" {
		t.Errorf("issue title = %q", got)
	}
	if !strings.Contains(loc.Query().Get("body"), "display_name: Test Persona") {
		t.Error("issue body should embed the manifest")
	}
}

func TestSubmitRejectsInvalidManifest(t *testing.T) {
	srv := newTestServer(t)
	resp, err := srv.Client().PostForm(srv.URL+"/submit",
		url.Values{"manifest": {"name: Bad Name\nversion: not-semver\n"}})
	if err != nil {
		t.Fatalf("POST /submit: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if !strings.Contains(doc.Text(), "version") {
		t.Error("error output should name the failing field")
	}
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Post(srv.URL+"/api/validate", "application/yaml",
		strings.NewReader(validSubmitManifest))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var ok validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ok.Valid || len(ok.Problems) != 0 {
		t.Errorf("valid manifest rejected: %+v", ok.Problems)
	}

	resp, err = srv.Client().Post(srv.URL+"/api/validate", "application/yaml",
		strings.NewReader("version: nope\n"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	var bad validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&bad); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bad.Valid || len(bad.Problems) == 0 {
		t.Error("invalid manifest accepted")
	}
}

func TestHealthzRoute(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body struct {
		Status   string `json:"status"`
		Personas int    `json:"personas"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Personas != catalog.Default().Len() {
		t.Errorf("body = %+v", body)
	}
}

func TestSearchSocket(t *testing.T) {
	srv := newTestServer(t)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/search"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	store := catalog.Default()

	// Empty frame returns the whole catalog.
	if err := conn.WriteJSON(searchFrame{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var all searchResult
	if err := conn.ReadJSON(&all); err != nil {
		t.Fatalf("read: %v", err)
	}
	if all.Count != store.Len() {
		t.Errorf("count = %d, want %d", all.Count, store.Len())
	}

	// A narrowing frame over the same connection.
	if err := conn.WriteJSON(searchFrame{Search: "operator"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var narrowed searchResult
	if err := conn.ReadJSON(&narrowed); err != nil {
		t.Fatalf("read: %v", err)
	}
	if narrowed.Count == 0 || narrowed.Count >= all.Count {
		t.Errorf("narrowed count = %d", narrowed.Count)
	}
	for _, hit := range narrowed.Hits {
		if _, ok := store.BySlug(hit.Slug); !ok {
			t.Errorf("hit %q not in catalog", hit.Slug)
		}
	}
}
