package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/MrSnakeDoc/insights/internal/domain"
)

// ErrPostNotFound is returned by Get for an id absent from the catalog.
var ErrPostNotFound = errors.New("post not found")

// Catalog is the ordered, immutable collection of posts.
// It is safe for concurrent readers because nothing mutates it after New.
type Catalog struct {
	posts    []domain.Post
	byID     map[string]int // ID -> position in posts
	source   string
	loadedAt time.Time
}

// New validates posts and builds a catalog. Every problem is reported, not
// just the first one.
func New(source string, posts []domain.Post) (*Catalog, error) {
	c := &Catalog{
		posts:    make([]domain.Post, 0, len(posts)),
		byID:     make(map[string]int, len(posts)),
		source:   source,
		loadedAt: time.Now(),
	}

	var errs error
	for i, p := range posts {
		if p.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("post #%d: empty id", i+1))
			continue
		}
		if !validID(p.ID) {
			errs = multierr.Append(errs, fmt.Errorf("post #%d: id %q is not a valid path segment", i+1, p.ID))
			continue
		}
		if prev, dup := c.byID[p.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("post #%d: duplicate id %q (first seen at #%d)", i+1, p.ID, prev+1))
			continue
		}
		c.byID[p.ID] = len(c.posts)
		c.posts = append(c.posts, p.Clone())
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", source, errs)
	}

	return c, nil
}

// validID reports whether id can be routed as a single /blog/{id} segment.
func validID(id string) bool {
	return id != "." && id != ".." && !strings.ContainsAny(id, "/\\")
}

// Lookup returns the post with the given id. Absence is a normal outcome.
func (c *Catalog) Lookup(id string) (domain.Post, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Post{}, false
	}
	return c.posts[i].Clone(), true
}

// Get is Lookup for callers that propagate errors.
func (c *Catalog) Get(id string) (domain.Post, error) {
	p, ok := c.Lookup(id)
	if !ok {
		return domain.Post{}, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}
	return p, nil
}

// Posts returns a copy of the posts in catalog order.
func (c *Catalog) Posts() []domain.Post {
	out := make([]domain.Post, len(c.posts))
	for i, p := range c.posts {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of posts.
func (c *Catalog) Len() int { return len(c.posts) }

// Categories returns "All" followed by the distinct categories.
func (c *Catalog) Categories() []string { return domain.Categories(c.posts) }

// Listing builds the listing view model for state.
func (c *Catalog) Listing(state domain.FilterState, opts domain.ListingOptions) domain.Listing {
	return domain.BuildListing(c.Posts(), state, opts)
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string { return c.source }

// LoadedAt is the time the catalog was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }
