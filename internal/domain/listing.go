package domain

import "strings"

// AllCategories is the sentinel category meaning "no category filter".
const AllCategories = "All"

// FilterState is the transient (category, search) pair driving the listing.
type FilterState struct {
	Category string
	Search   string
}

// DefaultFilterState is the state of a fresh listing: no filter, no search.
func DefaultFilterState() FilterState {
	return FilterState{Category: AllCategories}
}

// Normalize maps an empty category onto the "All" sentinel.
func (s FilterState) Normalize() FilterState {
	if s.Category == "" {
		s.Category = AllCategories
	}
	return s
}

// IsDefault reports whether neither a category nor a search is active.
func (s FilterState) IsDefault() bool {
	s = s.Normalize()
	return s.Category == AllCategories && s.Search == ""
}

// Categories returns "All" followed by every distinct category in order of
// first occurrence.
func Categories(posts []Post) []string {
	categories := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, p := range posts {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// Matches is the listing predicate: exact category match (or "All") AND a
// case-insensitive substring match of search in title or excerpt.
func Matches(p Post, category, search string) bool {
	if category != AllCategories && p.Category != category {
		return false
	}
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Excerpt), needle)
}

// Filter returns the posts satisfying Matches, in catalog order.
// The result is never nil.
func Filter(posts []Post, category, search string) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if Matches(p, category, search) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the first post when the state is default.
func Featured(posts []Post, state FilterState) (Post, bool) {
	if !state.IsDefault() || len(posts) == 0 {
		return Post{}, false
	}
	return posts[0], true
}

// ListingOptions tunes presentation rules of BuildListing.
type ListingOptions struct {
	// ExcludeFeatured removes the featured post from the grid. The featured
	// post is shown twice when false.
	ExcludeFeatured bool
}

// Listing is everything the listing view needs.
type Listing struct {
	State      FilterState
	Categories []string
	Featured   *Post
	Posts      []Post
}

// Empty reports the "no results" state.
func (l Listing) Empty() bool { return len(l.Posts) == 0 }

// BuildListing filters posts for state and selects the featured post.
func BuildListing(posts []Post, state FilterState, opts ListingOptions) Listing {
	state = state.Normalize()
	l := Listing{
		State:      state,
		Categories: Categories(posts),
		Posts:      Filter(posts, state.Category, state.Search),
	}

	if featured, ok := Featured(posts, state); ok {
		l.Featured = &featured
		if opts.ExcludeFeatured {
			grid := l.Posts[:0:0]
			for _, p := range l.Posts {
				if p.ID != featured.ID {
					grid = append(grid, p)
				}
			}
			l.Posts = grid
		}
	}

	return l
}
