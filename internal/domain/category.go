package domain

// CategoryAll is the sentinel slug meaning "no category filter". It is
// never a real category and is excluded from machine projections.
const CategoryAll = "all"

// Category is one fixed classification label. The category table is the
// single source of truth for both slugs and display labels; there is no
// separate label map.
type Category struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// IsAll reports whether this is the sentinel entry.
func (c Category) IsAll() bool {
	return c.Slug == CategoryAll
}
