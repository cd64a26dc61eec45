package catalog

import (
	"fmt"
	"os"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/insights/internal/domain"
	"github.com/MrSnakeDoc/insights/internal/logger"
)

// Options selects the catalog source. With File and Dir empty the embedded
// catalog is used.
type Options struct {
	File     string // YAML catalog file
	Dir      string // directory of markdown posts with front matter
	Sanitize bool   // pass content through a UGC sanitizing policy
}

// Loader reads a catalog once at startup.
type Loader struct {
	opts   Options
	md     goldmark.Markdown
	policy *bluemonday.Policy
	logger logger.Logger
}

// NewLoader creates a loader for opts.
func NewLoader(opts Options, log logger.Logger) *Loader {
	l := &Loader{
		opts:   opts,
		md:     newMarkdown(),
		logger: log.With(logger.String("component", "catalog")),
	}
	if opts.Sanitize {
		l.policy = contentPolicy()
	}
	return l
}

// Load reads the configured source and returns the validated catalog.
func (l *Loader) Load() (*Catalog, error) {
	switch {
	case l.opts.File != "" && l.opts.Dir != "":
		return nil, fmt.Errorf("catalog file and content dir are mutually exclusive")
	case l.opts.File != "":
		data, err := os.ReadFile(l.opts.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		return l.LoadYAML("file:"+l.opts.File, data)
	case l.opts.Dir != "":
		return l.loadDir(l.opts.Dir)
	default:
		return l.LoadYAML(EmbeddedSource, embeddedPosts)
	}
}

// LoadYAML parses a catalog document.
func (l *Loader) LoadYAML(source string, data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml %s: %w", source, err)
	}
	return l.build(source, file.Posts)
}

// build renders markdown, fills derived fields and validates the records.
func (l *Loader) build(source string, records []postRecord) (*Catalog, error) {
	posts := make([]domain.Post, 0, len(records))
	var errs error

	for i, r := range records {
		if r.Content != "" && r.Markdown != "" {
			errs = multierr.Append(errs, fmt.Errorf("post #%d (%s): content and markdown are mutually exclusive", i+1, r.ID))
			continue
		}

		p := r.toPost()
		if r.Markdown != "" {
			html, err := l.renderMarkdown([]byte(r.Markdown))
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("post #%d (%s): %w", i+1, r.ID, err))
				continue
			}
			p.Content = html
		}
		if l.policy != nil {
			p.Content = l.policy.Sanitize(p.Content)
		}
		posts = append(posts, enrich(p))
	}

	if errs != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", source, errs)
	}

	c, err := New(source, posts)
	if err != nil {
		return nil, err
	}

	l.logger.Info("catalog loaded",
		logger.String("source", source),
		logger.Int("posts", c.Len()),
		logger.Bool("sanitized", l.policy != nil))

	return c, nil
}

// LoadEmbedded returns the catalog compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return NewLoader(Options{}, logger.NewNop()).Load()
}

// contentPolicy keeps class attributes so code highlighting and the lead
// paragraph style survive sanitization.
func contentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	return p
}
