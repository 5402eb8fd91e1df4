// Package catalog holds the persona registry and the read-only store plus
// the pure filtering/counting logic over it.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/persona-sh/personas-site-go/internal/domain"
	"github.com/persona-sh/personas-site-go/pkg/errors"
)

// Store is the immutable catalog loaded once at startup. All accessors
// return copies; nothing is mutated after NewStore returns.
type Store struct {
	personas   []domain.PersonaEntry
	categories []domain.Category
	bySlug     map[string]domain.PersonaEntry
	labels     map[string]string
}

// NewStore validates the registry data and builds the store. Validation
// failures are authoring mistakes and abort startup.
func NewStore(personas []domain.PersonaEntry, categories []domain.Category) (*Store, error) {
	catSlugs := make(map[string]bool, len(categories))
	labels := make(map[string]string, len(categories))
	for _, c := range categories {
		if c.Slug == "" {
			return nil, errors.NewValidationError("category slug must not be empty", "slug", c.Slug)
		}
		if catSlugs[c.Slug] {
			return nil, errors.NewValidationError("duplicate category slug", "slug", c.Slug)
		}
		catSlugs[c.Slug] = true
		labels[c.Slug] = c.Label
	}
	if !catSlugs[domain.CategoryAll] {
		return nil, errors.NewValidationError("category table must include the sentinel", "slug", domain.CategoryAll)
	}

	bySlug := make(map[string]domain.PersonaEntry, len(personas))
	normalized := make([]domain.PersonaEntry, 0, len(personas))
	for _, p := range personas {
		if p.Slug == "" {
			return nil, errors.NewValidationError("persona slug must not be empty", "slug", p.Slug)
		}
		if _, dup := bySlug[p.Slug]; dup {
			return nil, errors.NewValidationError("duplicate persona slug", "slug", p.Slug)
		}
		if !catSlugs[p.Category] || p.Category == domain.CategoryAll {
			return nil, errors.NewValidationError(
				fmt.Sprintf("persona %q references unknown category", p.Slug), "category", p.Category)
		}
		if _, err := semver.NewVersion(p.Version); err != nil {
			return nil, errors.NewValidationError(
				fmt.Sprintf("persona %q version is not semver", p.Slug), "version", p.Version)
		}
		for _, wf := range p.Workflows {
			if !strings.HasPrefix(wf.Command, "/") {
				return nil, errors.NewValidationError(
					fmt.Sprintf("persona %q workflow command must start with /", p.Slug), "command", wf.Command)
			}
		}
		p = withEmptyDefaults(p)
		bySlug[p.Slug] = p
		normalized = append(normalized, p)
	}

	return &Store{
		personas:   normalized,
		categories: append([]domain.Category(nil), categories...),
		bySlug:     bySlug,
		labels:     labels,
	}, nil
}

// Default returns a store over the compiled-in registry, panicking on
// registry errors since they can only come from a bad data edit.
func Default() *Store {
	s, err := NewStore(Personas, Categories)
	if err != nil {
		panic(fmt.Sprintf("catalog registry invalid: %v", err))
	}
	return s
}

// withEmptyDefaults makes every list field an empty slice rather than nil
// so projections never distinguish absent from empty.
func withEmptyDefaults(p domain.PersonaEntry) domain.PersonaEntry {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Integrations == nil {
		p.Integrations = []domain.Integration{}
	}
	if p.CompatibleWith == nil {
		p.CompatibleWith = []string{}
	}
	if p.Workflows == nil {
		p.Workflows = []domain.Workflow{}
	}
	if p.Blueprints == nil {
		p.Blueprints = []domain.Blueprint{}
	}
	if p.Highlights == nil {
		p.Highlights = []string{}
	}
	return p
}

// Personas returns the full catalog in registry order.
func (s *Store) Personas() []domain.PersonaEntry {
	return append([]domain.PersonaEntry(nil), s.personas...)
}

// Categories returns the canonical category table, sentinel included.
func (s *Store) Categories() []domain.Category {
	return append([]domain.Category(nil), s.categories...)
}

// CategorySlugs returns category slugs excluding the "all" sentinel, in
// table order.
func (s *Store) CategorySlugs() []string {
	slugs := make([]string, 0, len(s.categories))
	for _, c := range s.categories {
		if c.IsAll() {
			continue
		}
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

// BySlug looks up one persona by its identity key.
func (s *Store) BySlug(slug string) (domain.PersonaEntry, bool) {
	p, ok := s.bySlug[slug]
	return p, ok
}

// CategoryLabel maps a category slug to its display label, falling back to
// the raw slug when the table has no entry.
func (s *Store) CategoryLabel(slug string) string {
	if label, ok := s.labels[slug]; ok {
		return label
	}
	return slug
}

// Featured returns the featured personas in registry order.
func (s *Store) Featured() []domain.PersonaEntry {
	out := make([]domain.PersonaEntry, 0, len(s.personas))
	for _, p := range s.personas {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the total persona count.
func (s *Store) Len() int {
	return len(s.personas)
}
