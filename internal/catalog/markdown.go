package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/multierr"

	"github.com/MrSnakeDoc/insights/internal/logger"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Authors are trusted; raw HTML in markdown is kept.
			gmhtml.WithUnsafe(),
		),
	)
}

func (l *Loader) renderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := l.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

type markdownPost struct {
	file   string
	record postRecord
}

// loadDir reads every *.md file of dir. Front matter holds the metadata, the
// body is the article. Posts are ordered by front matter "order", then file name.
func (l *Loader) loadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content dir: %w", err)
	}

	var (
		found []markdownPost
		errs  error
	)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		record, err := readMarkdownPost(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		found = append(found, markdownPost{file: entry.Name(), record: record})
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid content dir %s: %w", dir, errs)
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].record.Order != found[j].record.Order {
			return found[i].record.Order < found[j].record.Order
		}
		return found[i].file < found[j].file
	})

	records := make([]postRecord, 0, len(found))
	for _, f := range found {
		records = append(records, f.record)
	}

	l.logger.Debug("markdown posts discovered",
		logger.String("dir", dir),
		logger.Int("count", len(records)))

	return l.build("dir:"+dir, records)
}

func readMarkdownPost(path string) (postRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return postRecord{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var record postRecord
	body, err := frontmatter.Parse(bytes.NewReader(data), &record)
	if err != nil {
		return postRecord{}, fmt.Errorf("failed to parse front matter of %s: %w", path, err)
	}
	if record.Content != "" || record.Markdown != "" {
		return postRecord{}, fmt.Errorf("%s: body must be the file content, not a front matter key", path)
	}

	if record.ID == "" {
		base := filepath.Base(path)
		record.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	record.Markdown = string(body)

	return record, nil
}
