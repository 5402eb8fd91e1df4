package server

import (
	"context"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/persona-sh/personas-site-go/internal/catalog"
	"github.com/persona-sh/personas-site-go/internal/personafile"
	"github.com/persona-sh/personas-site-go/internal/render"
	"github.com/persona-sh/personas-site-go/internal/service/github"
)

const (
	// Machine documents revalidate on the same horizon as the GitHub
	// metadata cache.
	publicCacheControl = "public, max-age=3600"

	// Submit payloads are small YAML manifests.
	maxManifestBytes = 64 << 10
)

// Handler serves every route of the site from one catalog store.
type Handler struct {
	store           *catalog.Store
	pages           *render.Pages
	github          *github.Client
	logger          *zap.Logger
	baseURL         string
	issueTrackerURL string
}

func NewHandler(store *catalog.Store, pages *render.Pages, gh *github.Client, logger *zap.Logger, baseURL, issueTrackerURL string) *Handler {
	return &Handler{
		store:           store,
		pages:           pages,
		github:          gh,
		logger:          logger,
		baseURL:         baseURL,
		issueTrackerURL: issueTrackerURL,
	}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleHome)
	mux.HandleFunc("GET /browse", h.handleBrowse)
	mux.HandleFunc("GET /persona/{slug}", h.handlePersona)
	mux.HandleFunc("GET /docs", h.handleDocs)
	mux.HandleFunc("GET /submit", h.handleSubmitForm)
	mux.HandleFunc("POST /submit", h.handleSubmit)
	mux.HandleFunc("GET /catalog.json", h.handleCatalogJSON)
	mux.HandleFunc("GET /llms.txt", h.handleLLMs)
	mux.HandleFunc("GET /llms-full.txt", h.handleLLMsFull)
	mux.HandleFunc("POST /api/validate", h.handleValidate)
	mux.HandleFunc("GET /ws/search", h.handleSearchSocket)
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	return mux
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Home(w); err != nil {
		h.renderError(w, r, err)
	}
}

// queryFromRequest maps the bookmarkable filter parameters onto a catalog
// query. Unknown categories pass through untouched; they simply match
// nothing.
func queryFromRequest(r *http.Request) catalog.Query {
	values := r.URL.Query()
	return catalog.Query{
		Category:      values.Get("category"),
		Search:        values.Get("q"),
		HasWorkflows:  values.Get("workflows") == "1",
		HasBlueprints: values.Get("blueprints") == "1",
	}
}

func (h *Handler) handleBrowse(w http.ResponseWriter, r *http.Request) {
	q := queryFromRequest(r)
	stars := h.github.StarsBySlug(r.Context(), h.store.Personas())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Browse(w, q, stars); err != nil {
		h.renderError(w, r, err)
	}
}

func (h *Handler) handlePersona(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	entry, ok := h.store.BySlug(slug)
	if !ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		if err := h.pages.NotFound(w, slug); err != nil {
			h.logger.Error("Not-found page failed", zap.Error(err))
		}
		return
	}

	stars, readmeHTML := h.fetchPersonaExtras(r.Context(), entry.Repository)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Detail(w, entry, stars, readmeHTML); err != nil {
		h.renderError(w, r, err)
	}
}

// fetchPersonaExtras pulls the star count and README in parallel. Either
// may come back empty; the detail page renders without them.
func (h *Handler) fetchPersonaExtras(ctx context.Context, repoURL string) (*int, template.HTML) {
	var (
		stars      *int
		readmeHTML template.HTML
	)

	p := pool.New().WithMaxGoroutines(2)
	p.Go(func() {
		stars = h.github.Stars(ctx, repoURL)
	})
	p.Go(func() {
		raw, ok := h.github.RepoFile(ctx, repoURL, "README.md")
		if !ok {
			return
		}
		if html, ok := render.Markdown(raw); ok {
			readmeHTML = html
		}
	})
	p.Wait()

	return stars, readmeHTML
}

func (h *Handler) handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Docs(w); err != nil {
		h.renderError(w, r, err)
	}
}

func (h *Handler) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Submit(w, ""); err != nil {
		h.renderError(w, r, err)
	}
}

// handleSubmit validates the posted manifest and forwards valid ones to
// the registry issue tracker with the manifest prefilled. Invalid ones
// re-render the form with the problem list.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxManifestBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	raw := r.PostFormValue("manifest")

	manifest, err := personafile.Parse([]byte(raw))
	if err != nil {
		h.renderSubmitError(w, r, "Could not parse manifest: "+err.Error())
		return
	}
	if problems := manifest.Validate(h.store.CategorySlugs()); len(problems) > 0 {
		h.renderSubmitError(w, r, formatProblems(problems))
		return
	}

	issue := url.Values{}
	issue.Set("title", "Add persona: "+manifest.Name)
	issue.Set("body", "```yaml\n"+raw+"\n```")
	http.Redirect(w, r, h.issueTrackerURL+"?"+issue.Encode(), http.StatusFound)
}

func (h *Handler) renderSubmitError(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := h.pages.Submit(w, msg); err != nil {
		h.logger.Error("Submit page failed", zap.Error(err))
	}
}

func formatProblems(problems []personafile.Problem) string {
	lines := make([]string, 0, len(problems))
	for _, p := range problems {
		lines = append(lines, p.Field+": "+p.Message)
	}
	return strings.Join(lines, "\n")
}

func (h *Handler) handleCatalogJSON(w http.ResponseWriter, r *http.Request) {
	doc := render.BuildCatalogDocument(h.store, time.Now())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", publicCacheControl)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		h.logger.Error("Catalog encode failed", zap.Error(err))
	}
}

func (h *Handler) handleLLMs(w http.ResponseWriter, r *http.Request) {
	out, err := render.LLMs(h.store, h.baseURL)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, out)
}

func (h *Handler) handleLLMsFull(w http.ResponseWriter, r *http.Request) {
	out, err := render.LLMsFull(h.store)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", publicCacheControl)
	io.WriteString(w, out)
}

type validateResponse struct {
	Valid    bool                  `json:"valid"`
	Problems []personafile.Problem `json:"problems"`
}

// handleValidate checks a raw persona.yaml body and reports every problem
// found, so authors can fix the whole manifest in one round trip.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxManifestBytes))
	if err != nil {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}

	resp := validateResponse{Problems: []personafile.Problem{}}
	manifest, err := personafile.Parse(body)
	if err != nil {
		resp.Problems = append(resp.Problems, personafile.Problem{
			Field:   "manifest",
			Message: err.Error(),
		})
	} else {
		resp.Problems = append(resp.Problems, manifest.Validate(h.store.CategorySlugs())...)
	}
	resp.Valid = len(resp.Problems) == 0

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if !resp.Valid {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Validate encode failed", zap.Error(err))
	}
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"personas": h.store.Len(),
	})
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("Page render failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
