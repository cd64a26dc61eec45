package view

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/insights/internal/domain"
)

func samplePosts() []domain.Post {
	return []domain.Post{
		{ID: "first", Title: "First <Post>", Excerpt: "about go", Category: "Go", Tags: []string{"go"}, Content: `<p class="lead">Trusted <em>html</em></p>`},
		{ID: "second", Title: "Second", Excerpt: "about rust", Category: "Rust"},
	}
}

func TestListingURL(t *testing.T) {
	tests := []struct {
		category, search, want string
	}{
		{"All", "", "/blog"},
		{"", "", "/blog"},
		{"LLMs", "", "/blog?category=LLMs"},
		{"All", "rag", "/blog?q=rag"},
		{"Data Science", "a&b", "/blog?category=Data+Science&q=a%26b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ListingURL(tt.category, tt.search))
	}
}

func TestPostAndShareURL(t *testing.T) {
	assert.Equal(t, "/blog/rag-vs-finetuning", PostURL("rag-vs-finetuning"))
	assert.Equal(t, "/blog/x/share/copy", ShareURL("x", domain.PlatformCopy))
}

func TestRenderListing(t *testing.T) {
	r, err := NewRenderer("Insights")
	require.NoError(t, err)

	l := domain.BuildListing(samplePosts(), domain.DefaultFilterState(), domain.ListingOptions{})
	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, 200, PageListing, r.Listing(l)))

	body := rec.Body.String()
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, `data-featured="first"`)
	assert.Contains(t, body, `data-post="second"`)
	assert.Contains(t, body, "First &lt;Post&gt;", "titles must be escaped")
	assert.Contains(t, body, `href="/blog?category=Rust"`)
	assert.NotContains(t, body, "No posts found")
}

func TestRenderListingEmpty(t *testing.T) {
	r, err := NewRenderer("Insights")
	require.NoError(t, err)

	state := domain.FilterState{Category: "Go", Search: "rust"}
	l := domain.BuildListing(samplePosts(), state, domain.ListingOptions{})
	page := r.Listing(l)
	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, 200, PageListing, page))

	body := rec.Body.String()
	assert.Contains(t, body, "No posts found matching your criteria.")
	assert.Contains(t, body, `<a href="/blog">Clear filters</a>`)
	assert.NotContains(t, body, "data-featured")
	assert.Contains(t, body, `value="rust"`)

	for _, c := range page.Categories {
		assert.Equal(t, c.Name == "Go", c.Active, c.Name)
		assert.True(t, strings.Contains(c.URL, "q=rust"), "category links keep the search term")
	}
}

func TestRenderPost(t *testing.T) {
	r, err := NewRenderer("Insights")
	require.NoError(t, err)

	page := r.Post(samplePosts()[0], "https://blog.example.com/blog/first", domain.PlatformLinkedIn)
	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, 200, PagePost, page))

	body := rec.Body.String()
	assert.Contains(t, body, `<p class="lead">Trusted <em>html</em></p>`, "content is rendered verbatim")
	assert.Contains(t, body, "Shared on LinkedIn!")
	assert.Contains(t, body, "#go")
	assert.Contains(t, body, `action="/blog/first/share/twitter"`)
	assert.Contains(t, body, "https://blog.example.com/blog/first")
	assert.Len(t, page.Shares, len(domain.Platforms))
}

func TestRenderNotFound(t *testing.T) {
	r, err := NewRenderer("Insights")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, 404, PageNotFound, r.NotFound("nonexistent-id")))

	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post Not Found")
	assert.Contains(t, rec.Body.String(), `<a href="/blog">Back to Blog</a>`)
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer("Insights")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	assert.Error(t, r.Render(rec, 200, "missing", nil))
	assert.Equal(t, 0, rec.Body.Len())
}
