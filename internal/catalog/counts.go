package catalog

import "github.com/persona-sh/personas-site-go/internal/domain"

// Counts computes the per-category persona totals from the FULL catalog.
// The "all" sentinel counts every persona. Counts never depend on the
// active filter; the browse view recomputes its visible subset separately.
func Counts(s *Store) map[string]int {
	counts := make(map[string]int, len(s.categories))
	for _, c := range s.categories {
		if c.IsAll() {
			counts[c.Slug] = len(s.personas)
			continue
		}
		counts[c.Slug] = 0
	}
	for _, p := range s.personas {
		counts[p.Category]++
	}
	return counts
}

// VisibleCategories returns the categories worth offering as filters:
// the "all" sentinel always, plus every category with at least one member,
// in canonical table order.
func VisibleCategories(s *Store) []domain.Category {
	counts := Counts(s)
	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.IsAll() || counts[c.Slug] > 0 {
			out = append(out, c)
		}
	}
	return out
}
