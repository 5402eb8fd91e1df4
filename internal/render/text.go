package render

import (
	"embed"
	"strings"
	"sync"
	"text/template"

	"github.com/persona-sh/personas-site-go/internal/catalog"
	"github.com/persona-sh/personas-site-go/internal/domain"
)

//go:embed templates/text/*.tmpl
var textTemplateFS embed.FS

var (
	textTemplates *template.Template
	textOnce      sync.Once
	textErr       error
)

func executeTextTemplate(name string, data any) (string, error) {
	textOnce.Do(func() {
		textTemplates, textErr = template.New("text").ParseFS(textTemplateFS, "templates/text/*.tmpl")
	})
	if textErr != nil {
		return "", textErr
	}

	var builder strings.Builder
	if err := textTemplates.ExecuteTemplate(&builder, name, data); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// personaDump is the flattened one-persona view used by the full catalog
// text dump. Formatting rules live here, not in the template: integration
// type defaults to "service", empty lists collapse to "none".
type personaDump struct {
	Slug           string
	Name           string
	Category       string
	Author         string
	AuthorGithub   string
	Repository     string
	Install        string
	Tags           string
	CompatibleWith string
	Description    string
	Integrations   string
	Workflows      string
	Blueprints     string
	Highlights     []string
}

func buildPersonaDump(p domain.PersonaEntry) personaDump {
	integrations := "none"
	if len(p.Integrations) > 0 {
		parts := make([]string, 0, len(p.Integrations))
		for _, in := range p.Integrations {
			req := "optional"
			if in.Required {
				req = "required"
			}
			parts = append(parts, in.Name+" ("+string(in.EffectiveType())+", "+req+")")
		}
		integrations = strings.Join(parts, ", ")
	}

	workflows := "none"
	if len(p.Workflows) > 0 {
		parts := make([]string, 0, len(p.Workflows))
		for _, w := range p.Workflows {
			parts = append(parts, w.Command+" - "+w.Name)
		}
		workflows = strings.Join(parts, ", ")
	}

	blueprints := "none"
	if len(p.Blueprints) > 0 {
		parts := make([]string, 0, len(p.Blueprints))
		for _, b := range p.Blueprints {
			parts = append(parts, b.DisplayName+" ("+string(b.Complexity)+")")
		}
		blueprints = strings.Join(parts, ", ")
	}

	return personaDump{
		Slug:           p.Slug,
		Name:           p.DisplayName,
		Category:       p.Category,
		Author:         p.Author,
		AuthorGithub:   p.AuthorGithub,
		Repository:     p.Repository,
		Install:        p.InstallCommand,
		Tags:           strings.Join(p.Tags, ", "),
		CompatibleWith: strings.Join(p.CompatibleWith, ", "),
		Description:    p.Description,
		Integrations:   integrations,
		Workflows:      workflows,
		Blueprints:     blueprints,
		Highlights:     p.Highlights,
	}
}

// personaSummary is the one-line-per-persona view in the abbreviated
// discovery document. The description is cut at 120 runes.
type personaSummary struct {
	Name        string
	Category    string
	Description string
	Repository  string
}

func buildPersonaSummary(p domain.PersonaEntry) personaSummary {
	desc := p.Description
	if runes := []rune(desc); len(runes) > 120 {
		desc = string(runes[:120])
	}
	return personaSummary{
		Name:        p.DisplayName,
		Category:    p.Category,
		Description: desc,
		Repository:  p.Repository,
	}
}

// LLMsFull renders the complete authoring spec plus the flattened catalog.
// The output is deterministic for a given store.
func LLMsFull(store *catalog.Store) (string, error) {
	personas := store.Personas()
	dumps := make([]personaDump, 0, len(personas))
	for _, p := range personas {
		dumps = append(dumps, buildPersonaDump(p))
	}
	return executeTextTemplate("llms_full.txt.tmpl", struct {
		Categories []string
		Count      int
		Personas   []personaDump
	}{
		Categories: store.CategorySlugs(),
		Count:      len(personas),
		Personas:   dumps,
	})
}

// LLMs renders the short discovery pointer document.
func LLMs(store *catalog.Store, baseURL string) (string, error) {
	personas := store.Personas()
	summaries := make([]personaSummary, 0, len(personas))
	seen := make(map[string]bool)
	var usedCategories []string
	for _, p := range personas {
		summaries = append(summaries, buildPersonaSummary(p))
		if !seen[p.Category] {
			seen[p.Category] = true
			usedCategories = append(usedCategories, p.Category)
		}
	}
	return executeTextTemplate("llms.txt.tmpl", struct {
		BaseURL    string
		Count      int
		Categories string
		Personas   []personaSummary
	}{
		BaseURL:    baseURL,
		Count:      len(personas),
		Categories: strings.Join(usedCategories, ", "),
		Personas:   summaries,
	})
}
