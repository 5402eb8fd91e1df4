// Package render projects the catalog store into its output formats: the
// structured JSON document, the two plain-text agent documents, and the
// HTML pages. Every projection reads the same store so the formats cannot
// diverge.
package render

import (
	"fmt"
	"time"

	"github.com/persona-sh/personas-site-go/internal/catalog"
	"github.com/persona-sh/personas-site-go/internal/domain"
)

const (
	catalogVersion = "1.0"

	catalogDescription = "personas.sh persona catalog. AI agents: fetch this URL to search all available personas."

	catalogSearchTips = "Search by: name, description, tags, category, integrations (mcpServers), workflows, highlights, or compatibleWith."

	installInstructions = "To install any persona, paste into your AI agent: 'Install the [displayName] persona from [repository] — clone the repo, read the setup instructions, ask me for my personal details, replace all template variables, copy the files to the right config locations, and walk me through connecting any integrations it needs.'"
)

// CatalogDocument is the machine-consumable projection served at
// /catalog.json. Count always equals len(Personas) and Categories never
// contains the "all" sentinel.
type CatalogDocument struct {
	Version             string                `json:"version"`
	Generated           string                `json:"generated"`
	Description         string                `json:"description"`
	SearchTips          string                `json:"search_tips"`
	InstallInstructions string                `json:"install_instructions"`
	Count               int                   `json:"count"`
	Categories          []string              `json:"categories"`
	Personas            []domain.PersonaEntry `json:"personas"`
}

// BuildCatalogDocument assembles the structured document from the store.
func BuildCatalogDocument(store *catalog.Store, now time.Time) CatalogDocument {
	personas := store.Personas()
	return CatalogDocument{
		Version:             catalogVersion,
		Generated:           now.UTC().Format(time.RFC3339),
		Description:         catalogDescription,
		SearchTips:          catalogSearchTips,
		InstallInstructions: installInstructions,
		Count:               len(personas),
		Categories:          store.CategorySlugs(),
		Personas:            personas,
	}
}

// InstallPrompt is the one-sentence install instruction for a specific
// persona, shown on the detail page and in the discovery documents.
func InstallPrompt(p domain.PersonaEntry) string {
	return fmt.Sprintf("Install the %s persona from %s — clone the repo, read the setup instructions, "+
		"ask me for my personal details, replace all template variables, copy the files to the right "+
		"config locations, and walk me through connecting any integrations it needs.",
		p.DisplayName, p.Repository)
}
