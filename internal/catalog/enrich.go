package catalog

import (
	"fmt"
	"strings"

	"github.com/k3a/html2text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/insights/internal/domain"
)

const wordsPerMinute = 200

// enrich fills display fields the author left empty.
func enrich(p domain.Post) domain.Post {
	if p.Title == "" && p.ID != "" {
		p.Title = titleFromID(p.ID)
	}
	if p.ReadTime == "" && p.Content != "" {
		p.ReadTime = EstimateReadTime(p.Content)
	}
	return p
}

// EstimateReadTime counts the words of an HTML fragment.
// Example: 450 words -> "3 min read"
func EstimateReadTime(content string) string {
	words := len(strings.Fields(PlainText(content)))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// PlainText renders an HTML fragment as readable text.
func PlainText(content string) string {
	return html2text.HTML2TextWithOptions(content, html2text.WithUnixLineBreaks())
}

// titleFromID turns "rag-vs-finetuning" into "Rag Vs Finetuning".
func titleFromID(id string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	return cases.Title(language.English).String(words)
}
