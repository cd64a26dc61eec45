package domain

import (
	"reflect"
	"strings"
	"testing"
)

func fixturePosts() []Post {
	return []Post{
		{
			ID:       "intro-to-transformers",
			Title:    "Demystifying the Transformer Architecture",
			Excerpt:  `A deep dive into the "Attention Is All You Need" paper and how Transformers revolutionized NLP.`,
			Category: "Deep Learning",
			Tags:     []string{"NLP", "Transformers"},
		},
		{
			ID:       "rag-vs-finetuning",
			Title:    "RAG vs. Fine-Tuning: Which Strategy to Choose?",
			Excerpt:  "Comparing Retrieval-Augmented Generation and Fine-Tuning for adapting LLMs to your specific domain data.",
			Category: "LLMs",
		},
		{
			ID:       "data-cleaning-pandas",
			Title:    "Advanced Data Cleaning with Pandas",
			Excerpt:  "Practical techniques for handling missing values, outliers, and messy datasets in Python.",
			Category: "Data Science",
		},
		{
			ID:       "future-of-ai-agents",
			Title:    "The Rise of Autonomous AI Agents",
			Excerpt:  "Why 2025 will be the year of the Agent, and how frameworks like LangGraph are enabling it.",
			Category: "AI Agents",
		},
	}
}

func ids(posts []Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestCategories(t *testing.T) {
	posts := fixturePosts()
	posts = append(posts, Post{ID: "second-llm", Category: "LLMs"}, Post{ID: "odd", Category: AllCategories})

	got := Categories(posts)
	want := []string{"All", "Deep Learning", "LLMs", "Data Science", "AI Agents"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestCategoriesEmptyCatalog(t *testing.T) {
	got := Categories(nil)
	if !reflect.DeepEqual(got, []string{"All"}) {
		t.Errorf("Categories(nil) = %v, want [All]", got)
	}
}

func TestFilterIdentity(t *testing.T) {
	posts := fixturePosts()
	got := Filter(posts, AllCategories, "")
	if !reflect.DeepEqual(ids(got), ids(posts)) {
		t.Errorf("Filter(All, \"\") = %v, want full catalog %v", ids(got), ids(posts))
	}
}

func TestFilterByCategory(t *testing.T) {
	posts := fixturePosts()
	for _, category := range Categories(posts)[1:] {
		t.Run(category, func(t *testing.T) {
			got := Filter(posts, category, "")
			if len(got) == 0 {
				t.Fatalf("Filter(%q) returned no posts", category)
			}
			for _, p := range got {
				if p.Category != category {
					t.Errorf("Filter(%q) returned post %s with category %q", category, p.ID, p.Category)
				}
			}
		})
	}
}

func TestFilterScenarios(t *testing.T) {
	tests := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{
			name:     "llms category",
			category: "LLMs",
			want:     []string{"rag-vs-finetuning"},
		},
		{
			name:     "search lower case",
			category: AllCategories,
			search:   "transformer",
			want:     []string{"intro-to-transformers"},
		},
		{
			name:     "search upper case",
			category: AllCategories,
			search:   "TRANSFORMER",
			want:     []string{"intro-to-transformers"},
		},
		{
			name:     "category and search conjunction has no match",
			category: "Data Science",
			search:   "agents",
			want:     []string{},
		},
		{
			name:     "search matches excerpt",
			category: AllCategories,
			search:   "langgraph",
			want:     []string{"future-of-ai-agents"},
		},
		{
			name:     "category is case sensitive",
			category: "llms",
			want:     []string{},
		},
		{
			name:     "unknown category",
			category: "Robotics",
			want:     []string{},
		},
		{
			name:     "search does not look at tags",
			category: AllCategories,
			search:   "NLP transformers",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(fixturePosts(), tt.category, tt.search)
			if got == nil {
				t.Fatal("Filter() returned nil, want empty slice")
			}
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("Filter(%q, %q) = %v, want %v", tt.category, tt.search, ids(got), tt.want)
			}
		})
	}
}

func TestFilterSearchIsMonotonic(t *testing.T) {
	posts := fixturePosts()
	term := "the rise of"
	prev := Filter(posts, AllCategories, "")
	for i := 1; i <= len(term); i++ {
		cur := Filter(posts, AllCategories, term[:i])
		prevIDs := make(map[string]bool, len(prev))
		for _, p := range prev {
			prevIDs[p.ID] = true
		}
		for _, p := range cur {
			if !prevIDs[p.ID] {
				t.Fatalf("refining %q to %q added post %s", term[:i-1], term[:i], p.ID)
			}
		}
		prev = cur
	}
}

func TestFilterSearchMatchesPredicate(t *testing.T) {
	posts := fixturePosts()
	for _, s := range []string{"a", "data", "DEEP", "zzz", "?"} {
		got := Filter(posts, AllCategories, s)
		var want []string
		for _, p := range posts {
			lower := strings.ToLower(s)
			if strings.Contains(strings.ToLower(p.Title), lower) || strings.Contains(strings.ToLower(p.Excerpt), lower) {
				want = append(want, p.ID)
			}
		}
		if want == nil {
			want = []string{}
		}
		if !reflect.DeepEqual(ids(got), want) {
			t.Errorf("Filter(All, %q) = %v, want %v", s, ids(got), want)
		}
	}
}

func TestClearingFiltersRestoresCatalog(t *testing.T) {
	posts := fixturePosts()
	state := FilterState{Category: "Data Science", Search: "agents"}
	if got := BuildListing(posts, state, ListingOptions{}); !got.Empty() {
		t.Fatalf("expected empty listing, got %v", ids(got.Posts))
	}

	cleared := BuildListing(posts, DefaultFilterState(), ListingOptions{})
	if !reflect.DeepEqual(ids(cleared.Posts), ids(posts)) {
		t.Errorf("cleared listing = %v, want %v", ids(cleared.Posts), ids(posts))
	}
}

func TestFilterStateNormalize(t *testing.T) {
	if got := (FilterState{}).Normalize(); got.Category != AllCategories {
		t.Errorf("Normalize() category = %q, want All", got.Category)
	}
	if !(FilterState{}).IsDefault() {
		t.Error("zero FilterState should be default")
	}
	if (FilterState{Search: "x"}).IsDefault() {
		t.Error("state with a search should not be default")
	}
	if (FilterState{Category: "LLMs"}).IsDefault() {
		t.Error("state with a category should not be default")
	}
}

func TestFeatured(t *testing.T) {
	posts := fixturePosts()

	got, ok := Featured(posts, DefaultFilterState())
	if !ok || got.ID != "intro-to-transformers" {
		t.Errorf("Featured(default) = (%s, %v), want intro-to-transformers", got.ID, ok)
	}

	if _, ok := Featured(posts, FilterState{Category: "LLMs"}); ok {
		t.Error("Featured() should be absent when a category is selected")
	}
	if _, ok := Featured(posts, FilterState{Category: AllCategories, Search: "rag"}); ok {
		t.Error("Featured() should be absent when a search is active")
	}
	if _, ok := Featured(nil, DefaultFilterState()); ok {
		t.Error("Featured() on an empty catalog should be absent")
	}
}

func TestBuildListingFeaturedInGrid(t *testing.T) {
	posts := fixturePosts()

	l := BuildListing(posts, FilterState{}, ListingOptions{})
	if l.Featured == nil || l.Featured.ID != posts[0].ID {
		t.Fatalf("Featured = %v, want %s", l.Featured, posts[0].ID)
	}
	if len(l.Posts) != len(posts) || l.Posts[0].ID != posts[0].ID {
		t.Errorf("grid = %v, featured post should also be in the grid", ids(l.Posts))
	}

	l = BuildListing(posts, FilterState{}, ListingOptions{ExcludeFeatured: true})
	if l.Featured == nil {
		t.Fatal("Featured should still be set with ExcludeFeatured")
	}
	for _, p := range l.Posts {
		if p.ID == l.Featured.ID {
			t.Errorf("grid should not contain featured post %s", p.ID)
		}
	}
	if len(l.Posts) != len(posts)-1 {
		t.Errorf("grid has %d posts, want %d", len(l.Posts), len(posts)-1)
	}
	if len(posts) != 4 {
		t.Error("BuildListing must not modify the input slice")
	}
}

func TestBuildListingExcludeFeaturedIgnoredWhenFiltered(t *testing.T) {
	posts := fixturePosts()
	l := BuildListing(posts, FilterState{Category: "Deep Learning"}, ListingOptions{ExcludeFeatured: true})
	if l.Featured != nil {
		t.Error("no featured post when a category is selected")
	}
	if !reflect.DeepEqual(ids(l.Posts), []string{"intro-to-transformers"}) {
		t.Errorf("grid = %v, want [intro-to-transformers]", ids(l.Posts))
	}
}

func TestPostCloneIsIndependent(t *testing.T) {
	p := fixturePosts()[0]
	c := p.Clone()
	c.Tags[0] = "changed"
	if p.Tags[0] != "NLP" {
		t.Error("Clone() shares the tags slice with the original")
	}

	s := Post{ID: "x", Content: "<p>body</p>"}.Summary()
	if s.Content != "" {
		t.Error("Summary() should drop content")
	}
}
