package domain

// Post is a single article of the catalog.
//
// Posts are values: they are built once when the catalog is loaded and never
// mutated afterwards. Content is a trusted HTML fragment rendered verbatim.
type Post struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the unique, stable routing key.
	// Example: intro-to-transformers
	ID string `json:"id" yaml:"id"`

	// ─────────────────────────────
	// Display metadata
	// ─────────────────────────────

	Title    string `json:"title" yaml:"title"`
	Excerpt  string `json:"excerpt" yaml:"excerpt"`
	Date     string `json:"date" yaml:"date"`         // display string, not parsed
	ReadTime string `json:"readTime" yaml:"readTime"` // ex: "10 min read"

	// Category is the coarse grouping key used by the listing filter.
	// Matching against it is case-sensitive.
	Category string `json:"category" yaml:"category"`

	// Tags are display-only; order is kept, duplicates are not removed.
	Tags []string `json:"tags" yaml:"tags"`

	Author Author `json:"author" yaml:"author"`

	// Image is the cover image URL.
	Image string `json:"image" yaml:"image"`

	// ─────────────────────────────
	// Body
	// ─────────────────────────────

	// Content is the article body as an HTML fragment.
	Content string `json:"content,omitempty" yaml:"content"`
}

// Author is embedded in every post; it is not a separate entity.
type Author struct {
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
	Role   string `json:"role" yaml:"role"`
}

// Clone returns a copy that shares no slices with p.
func (p Post) Clone() Post {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}

// Summary drops the body. Used by listings where content is never shown.
func (p Post) Summary() Post {
	s := p.Clone()
	s.Content = ""
	return s
}
