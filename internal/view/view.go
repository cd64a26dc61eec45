// Package view renders the blog pages with html/template.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/MrSnakeDoc/insights/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names.
const (
	PageListing  = "listing"
	PagePost     = "post"
	PageNotFound = "notfound"
)

// ListingPath is the address of the listing view.
const ListingPath = "/blog"

// Page carries the fields every page uses.
type Page struct {
	SiteTitle string
}

// CategoryLink is one entry of the category filter bar.
type CategoryLink struct {
	Name   string
	URL    string
	Active bool
}

// ListingPage is the data of the listing view.
type ListingPage struct {
	Page
	Listing    domain.Listing
	Categories []CategoryLink
	ClearURL   string
}

// ShareButton is a share form on the detail view.
type ShareButton struct {
	Platform domain.Platform
	Label    string
	Action   string
}

// PostPage is the data of the detail view.
type PostPage struct {
	Page
	Post      domain.Post
	Content   template.HTML
	Permalink string
	Notice    string
	Shares    []ShareButton
}

// NotFoundPage is rendered for unknown post ids.
type NotFoundPage struct {
	Page
	ID      string
	BackURL string
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	siteTitle string
	pages     map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer(siteTitle string) (*Renderer, error) {
	funcs := template.FuncMap{
		"postURL": PostURL,
	}

	r := &Renderer{
		siteTitle: siteTitle,
		pages:     make(map[string]*template.Template, 3),
	}
	for _, name := range []string{PageListing, PagePost, PageNotFound} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Listing builds the listing page data.
func (r *Renderer) Listing(l domain.Listing) ListingPage {
	links := make([]CategoryLink, 0, len(l.Categories))
	for _, c := range l.Categories {
		links = append(links, CategoryLink{
			Name:   c,
			URL:    ListingURL(c, l.State.Search),
			Active: c == l.State.Category,
		})
	}
	return ListingPage{
		Page:       Page{SiteTitle: r.siteTitle},
		Listing:    l,
		Categories: links,
		ClearURL:   ListingPath,
	}
}

// Post builds the detail page data. notice is the platform of a share action
// that just completed, empty otherwise.
func (r *Renderer) Post(p domain.Post, permalink string, notice domain.Platform) PostPage {
	page := PostPage{
		Page: Page{SiteTitle: r.siteTitle},
		Post: p,
		// Content is authored and trusted; it is rendered without escaping.
		Content:   template.HTML(p.Content), //nolint:gosec
		Permalink: permalink,
	}
	if notice != "" {
		page.Notice = domain.ShareNotice(notice)
	}
	for _, platform := range domain.Platforms {
		page.Shares = append(page.Shares, ShareButton{
			Platform: platform,
			Label:    platform.Label(),
			Action:   ShareURL(p.ID, platform),
		})
	}
	return page
}

// NotFound builds the data of the "Post Not Found" page.
func (r *Renderer) NotFound(id string) NotFoundPage {
	return NotFoundPage{
		Page:    Page{SiteTitle: r.siteTitle},
		ID:      id,
		BackURL: ListingPath,
	}
}

// Render executes page into a buffer first, so a failing template never
// leaves a half written response behind.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// ListingURL returns the listing address for a filter state, omitting defaults.
func ListingURL(category, search string) string {
	q := url.Values{}
	if category != "" && category != domain.AllCategories {
		q.Set("category", category)
	}
	if search != "" {
		q.Set("q", search)
	}
	if len(q) == 0 {
		return ListingPath
	}
	return ListingPath + "?" + q.Encode()
}

// PostURL returns the detail view address of a post.
func PostURL(id string) string {
	return ListingPath + "/" + url.PathEscape(id)
}

// ShareURL is the form action of a share button.
func ShareURL(id string, p domain.Platform) string {
	return PostURL(id) + "/share/" + string(p)
}
