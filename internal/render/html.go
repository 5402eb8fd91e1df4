package render

import (
	"embed"
	"html/template"
	"io"
	"sort"

	"github.com/persona-sh/personas-site-go/internal/catalog"
	"github.com/persona-sh/personas-site-go/internal/domain"
)

//go:embed templates/html/*.tmpl
var htmlTemplateFS embed.FS

// Pages renders the human-facing views. All pages derive from the same
// store instance as the machine projections.
type Pages struct {
	store     *catalog.Store
	baseURL   string
	templates *template.Template
}

func NewPages(store *catalog.Store, baseURL string) (*Pages, error) {
	tmpl, err := template.New("html").ParseFS(htmlTemplateFS, "templates/html/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Pages{store: store, baseURL: baseURL, templates: tmpl}, nil
}

// Card is the listing view of one persona.
type Card struct {
	Slug           string
	DisplayName    string
	Description    string
	CategoryLabel  string
	Tags           []string
	Version        string
	Stars          *int
	WorkflowCount  int
	BlueprintCount int
	Featured       bool
}

// Pill is one selectable category filter with its full-catalog count.
type Pill struct {
	Slug   string
	Label  string
	Count  int
	Active bool
}

func (p *Pages) card(entry domain.PersonaEntry, stars map[string]int) Card {
	c := Card{
		Slug:           entry.Slug,
		DisplayName:    entry.DisplayName,
		Description:    entry.Description,
		CategoryLabel:  p.store.CategoryLabel(entry.Category),
		Tags:           entry.Tags,
		Version:        entry.Version,
		WorkflowCount:  len(entry.Workflows),
		BlueprintCount: len(entry.Blueprints),
		Featured:       entry.Featured,
	}
	if stars != nil {
		if n, ok := stars[entry.Slug]; ok {
			c.Stars = &n
		}
	}
	return c
}

func (p *Pages) pills(active string) []Pill {
	counts := catalog.Counts(p.store)
	visible := catalog.VisibleCategories(p.store)
	out := make([]Pill, 0, len(visible))
	for _, c := range visible {
		out = append(out, Pill{
			Slug:   c.Slug,
			Label:  c.Label,
			Count:  counts[c.Slug],
			Active: c.Slug == active || (active == "" && c.IsAll()),
		})
	}
	return out
}

type homeData struct {
	Title    string
	BaseURL  string
	Total    int
	Featured []Card
}

func (p *Pages) Home(w io.Writer) error {
	featured := p.store.Featured()
	cards := make([]Card, 0, len(featured))
	for _, entry := range featured {
		cards = append(cards, p.card(entry, nil))
	}
	return p.templates.ExecuteTemplate(w, "home.html.tmpl", homeData{
		Title:    "personas.sh — npm for AI identities",
		BaseURL:  p.baseURL,
		Total:    p.store.Len(),
		Featured: cards,
	})
}

type browseData struct {
	Title      string
	BaseURL    string
	Total      int
	Query      catalog.Query
	Pills      []Pill
	Cards      []Card
	NoResults  bool
}

// Browse applies the filter query and renders the listing. When stars are
// available the results are ranked by them; otherwise catalog order holds.
func (p *Pages) Browse(w io.Writer, q catalog.Query, stars map[string]int) error {
	matched := catalog.Filter(p.store.Personas(), q)
	if len(stars) > 0 {
		matched = catalog.RankByStars(matched, stars)
	}
	cards := make([]Card, 0, len(matched))
	for _, entry := range matched {
		cards = append(cards, p.card(entry, stars))
	}
	return p.templates.ExecuteTemplate(w, "browse.html.tmpl", browseData{
		Title:     "Browse Personas — personas.sh",
		BaseURL:   p.baseURL,
		Total:     p.store.Len(),
		Query:     q,
		Pills:     p.pills(q.Category),
		Cards:     cards,
		NoResults: len(cards) == 0,
	})
}

type detailData struct {
	Title             string
	BaseURL           string
	Persona           domain.PersonaEntry
	CategoryLabel     string
	Stars             *int
	ReadmeHTML        template.HTML
	HasReadme         bool
	InstallPrompt     string
	BlueprintServices []string
}

// Detail renders one persona. Stars and readme are both optional; the
// page renders fully without them.
func (p *Pages) Detail(w io.Writer, entry domain.PersonaEntry, stars *int, readmeHTML template.HTML) error {
	services := map[string]bool{}
	for _, b := range entry.Blueprints {
		for _, s := range b.Services {
			services[s] = true
		}
	}
	allServices := make([]string, 0, len(services))
	for s := range services {
		allServices = append(allServices, s)
	}
	sort.Strings(allServices)

	return p.templates.ExecuteTemplate(w, "detail.html.tmpl", detailData{
		Title:             entry.DisplayName + " — personas.sh",
		BaseURL:           p.baseURL,
		Persona:           entry,
		CategoryLabel:     p.store.CategoryLabel(entry.Category),
		Stars:             stars,
		ReadmeHTML:        readmeHTML,
		HasReadme:         readmeHTML != "",
		InstallPrompt:     InstallPrompt(entry),
		BlueprintServices: allServices,
	})
}

type docsData struct {
	Title    string
	BaseURL  string
	SpecText string
}

// Docs shows the authoring spec, rendered from the same source as the
// llms-full dump so the two can never drift.
func (p *Pages) Docs(w io.Writer) error {
	spec, err := LLMsFull(p.store)
	if err != nil {
		return err
	}
	return p.templates.ExecuteTemplate(w, "docs.html.tmpl", docsData{
		Title:    "Docs — personas.sh",
		BaseURL:  p.baseURL,
		SpecText: spec,
	})
}

type submitData struct {
	Title   string
	BaseURL string
	Error   string
}

func (p *Pages) Submit(w io.Writer, errMsg string) error {
	return p.templates.ExecuteTemplate(w, "submit.html.tmpl", submitData{
		Title:   "Submit a Persona — personas.sh",
		BaseURL: p.baseURL,
		Error:   errMsg,
	})
}

type notFoundData struct {
	Title   string
	BaseURL string
	Slug    string
}

func (p *Pages) NotFound(w io.Writer, slug string) error {
	return p.templates.ExecuteTemplate(w, "notfound.html.tmpl", notFoundData{
		Title:   "Not Found — personas.sh",
		BaseURL: p.baseURL,
		Slug:    slug,
	})
}
