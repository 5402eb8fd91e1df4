package catalog

import (
	"sort"

	"github.com/persona-sh/personas-site-go/internal/domain"
	"github.com/persona-sh/personas-site-go/internal/util"
)

// Query is the transient filter state from the browse view. The zero value
// matches everything.
type Query struct {
	// Category is a category slug; empty or "all" means no category filter.
	// Unknown slugs are not an error, they simply match nothing.
	Category string
	// Search is free text, case-folded for comparison.
	Search string
	// HasWorkflows keeps only personas with at least one workflow.
	HasWorkflows bool
	// HasBlueprints keeps only personas with at least one blueprint.
	HasBlueprints bool
}

// Matches reports whether one persona satisfies every predicate of the
// query. Predicates are AND-combined.
func (q Query) Matches(p domain.PersonaEntry) bool {
	if q.Category != "" && q.Category != domain.CategoryAll && p.Category != q.Category {
		return false
	}
	if q.HasWorkflows && len(p.Workflows) == 0 {
		return false
	}
	if q.HasBlueprints && len(p.Blueprints) == 0 {
		return false
	}
	return matchesSearch(p, q.Search)
}

// matchesSearch does the case-folded substring test across every
// searchable field, including every element of the nested lists.
func matchesSearch(p domain.PersonaEntry, search string) bool {
	q := util.Normalize(search)
	if q == "" {
		return true
	}

	if contains(p.DisplayName, q) || contains(p.Description, q) || contains(p.Author, q) {
		return true
	}
	for _, t := range p.Tags {
		if contains(t, q) {
			return true
		}
	}
	for _, h := range p.Highlights {
		if contains(h, q) {
			return true
		}
	}
	for _, w := range p.Workflows {
		if contains(w.Name, q) || contains(w.Description, q) || contains(w.Command, q) {
			return true
		}
	}
	for _, i := range p.Integrations {
		if contains(i.Name, q) {
			return true
		}
	}
	for _, c := range p.CompatibleWith {
		if contains(c, q) {
			return true
		}
	}
	for _, b := range p.Blueprints {
		if contains(b.DisplayName, q) || contains(b.Description, q) {
			return true
		}
		for _, s := range b.Services {
			if contains(s, q) {
				return true
			}
		}
	}
	return false
}

func contains(field, loweredQuery string) bool {
	return util.ContainsFold(field, loweredQuery)
}

// Filter returns the matching subset as a new slice, preserving the
// relative order of the input. The input is never mutated.
func Filter(personas []domain.PersonaEntry, q Query) []domain.PersonaEntry {
	out := make([]domain.PersonaEntry, 0, len(personas))
	for _, p := range personas {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// RankByStars returns a new slice sorted descending by star count.
// Personas missing from the map rank as zero; ties keep their original
// relative order.
func RankByStars(personas []domain.PersonaEntry, stars map[string]int) []domain.PersonaEntry {
	out := append([]domain.PersonaEntry(nil), personas...)
	sort.SliceStable(out, func(i, j int) bool {
		return stars[out[i].Slug] > stars[out[j].Slug]
	})
	return out
}
