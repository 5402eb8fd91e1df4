// Package domain holds the catalog data model. Entries are value types:
// nothing here is mutated after the store is built.
package domain

// IntegrationType classifies how a persona connects to an external service.
type IntegrationType string

const (
	IntegrationMCP     IntegrationType = "mcp"
	IntegrationAPI     IntegrationType = "api"
	IntegrationService IntegrationType = "service"
	IntegrationPlugin  IntegrationType = "plugin"
)

// DefaultIntegrationType is applied at projection boundaries when an entry
// omits the type field.
const DefaultIntegrationType = IntegrationService

// Integration declares an external service a persona depends on.
type Integration struct {
	Name     string          `json:"name" yaml:"name"`
	Type     IntegrationType `json:"type,omitempty" yaml:"type,omitempty"`
	Required bool            `json:"required" yaml:"required"`
}

// EffectiveType returns the declared type, or the documented default.
func (i Integration) EffectiveType() IntegrationType {
	if i.Type == "" {
		return DefaultIntegrationType
	}
	return i.Type
}

// Workflow is a named slash command a persona exposes. Command always
// starts with "/".
type Workflow struct {
	Command     string `json:"command" yaml:"command"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Complexity grades how involved a blueprint is to set up.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Blueprint describes a reproducible project system bundled with a persona.
type Blueprint struct {
	Name        string     `json:"name" yaml:"name"`
	DisplayName string     `json:"displayName" yaml:"display_name"`
	Description string     `json:"description" yaml:"description"`
	Complexity  Complexity `json:"complexity" yaml:"complexity"`
	Services    []string   `json:"services" yaml:"services"`
	Outcomes    []string   `json:"outcomes" yaml:"outcomes"`
}

// NoRepository is the sentinel used when an entry has no public repo link.
const NoRepository = "#"

// PersonaEntry is the root catalog aggregate. Slug is the identity key and
// URL segment.
type PersonaEntry struct {
	Slug           string        `json:"slug"`
	DisplayName    string        `json:"displayName"`
	Description    string        `json:"description"`
	Author         string        `json:"author"`
	AuthorGithub   string        `json:"authorGithub"`
	Category       string        `json:"category"`
	Tags           []string      `json:"tags"`
	Integrations   []Integration `json:"integrations"`
	CompatibleWith []string      `json:"compatibleWith"`
	Workflows      []Workflow    `json:"workflows"`
	Blueprints     []Blueprint   `json:"blueprints"`
	Highlights     []string      `json:"highlights"`
	Version        string        `json:"version"`
	Repository     string        `json:"repository"`
	InstallCommand string        `json:"installCommand"`
	Featured       bool          `json:"featured"`
}

// HasRepository reports whether the entry links to a real repo.
func (p PersonaEntry) HasRepository() bool {
	return p.Repository != "" && p.Repository != NoRepository
}
