// Package personafile parses and validates persona.yaml manifests against
// the authoring spec published on the docs page, so authors can check a
// package before submitting it to the registry.
package personafile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/persona-sh/personas-site-go/internal/domain"
	"github.com/persona-sh/personas-site-go/internal/util"
)

// Manifest mirrors the persona.yaml schema.
type Manifest struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Author      struct {
		Name   string `yaml:"name"`
		Github string `yaml:"github"`
	} `yaml:"author"`
	Category       string               `yaml:"category"`
	Tags           []string             `yaml:"tags"`
	CompatibleWith []string             `yaml:"compatible_with"`
	Integrations   []ManifestIntegration `yaml:"integrations"`
	Workflows      []domain.Workflow    `yaml:"workflows"`
	Blueprints     []string             `yaml:"blueprints"`
	Highlights     []string             `yaml:"highlights"`
	Repository     string               `yaml:"repository"`
}

type ManifestIntegration struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
	Purpose  string `yaml:"purpose"`
}

// Problem is one validation finding, keyed by the offending field.
type Problem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	integrationTypes = map[string]bool{
		string(domain.IntegrationMCP):     true,
		string(domain.IntegrationAPI):     true,
		string(domain.IntegrationService): true,
		string(domain.IntegrationPlugin):  true,
	}
)

// Parse decodes a persona.yaml document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing persona.yaml: %w", err)
	}
	return &m, nil
}

// Validate checks the manifest against the authoring rules. categorySlugs
// is the canonical category list (without the "all" sentinel). An empty
// result means the manifest is acceptable.
func (m *Manifest) Validate(categorySlugs []string) []Problem {
	var problems []Problem
	add := func(field, format string, args ...any) {
		problems = append(problems, Problem{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	switch {
	case m.Name == "":
		add("name", "name is required")
	case len(m.Name) < 3 || len(m.Name) > 40:
		add("name", "name must be 3-40 characters, got %d", len(m.Name))
	case !namePattern.MatchString(m.Name):
		add("name", "name must be lowercase letters, digits, and hyphens")
	}

	if m.DisplayName == "" {
		add("display_name", "display_name is required")
	}
	if m.Description == "" {
		add("description", "description is required")
	}
	if m.Author.Name == "" {
		add("author.name", "author name is required")
	}
	if m.Author.Github == "" {
		add("author.github", "author github handle is required")
	}

	if m.Version == "" {
		add("version", "version is required")
	} else if _, err := semver.NewVersion(m.Version); err != nil {
		add("version", "version %q is not semver", m.Version)
	}

	if m.Category == "" {
		add("category", "category is required")
	} else if !util.Contains(categorySlugs, m.Category) {
		add("category", "category %q is not in the category list", m.Category)
	}

	if len(m.Tags) < 2 || len(m.Tags) > 8 {
		add("tags", "tags must have 2-8 entries, got %d", len(m.Tags))
	}
	for _, tag := range m.Tags {
		if !namePattern.MatchString(tag) {
			add("tags", "tag %q must be lowercase and hyphenated", tag)
		}
	}

	for _, wf := range m.Workflows {
		if !strings.HasPrefix(wf.Command, "/") {
			add("workflows", "workflow command %q must start with /", wf.Command)
		}
		if wf.Name == "" {
			add("workflows", "workflow %q needs a name", wf.Command)
		}
	}

	for _, in := range m.Integrations {
		if in.Name == "" {
			add("integrations", "integration entries need a name")
		}
		if in.Type != "" && !integrationTypes[in.Type] {
			add("integrations", "integration type %q must be one of mcp, api, service, plugin", in.Type)
		}
	}

	if n := len(m.Highlights); n > 0 && (n < 3 || n > 9) {
		add("highlights", "highlights must have 3-9 entries when present, got %d", n)
	}

	return problems
}
