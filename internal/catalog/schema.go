package catalog

import "github.com/MrSnakeDoc/insights/internal/domain"

// catalogFile is the top-level structure of a catalog YAML file.
type catalogFile struct {
	Posts []postRecord `yaml:"posts"`
}

// postRecord is one post as authored. Either Content (HTML) or Markdown may be
// set; Markdown is rendered to HTML at load time.
type postRecord struct {
	ID       string        `yaml:"id"`
	Title    string        `yaml:"title"`
	Excerpt  string        `yaml:"excerpt"`
	Date     string        `yaml:"date"`
	ReadTime string        `yaml:"readTime"`
	Category string        `yaml:"category"`
	Tags     []string      `yaml:"tags"`
	Author   domain.Author `yaml:"author"`
	Image    string        `yaml:"image"`
	Content  string        `yaml:"content"`
	Markdown string        `yaml:"markdown"`

	// Order only applies to markdown directories; YAML files keep list order.
	Order int `yaml:"order"`
}

func (r postRecord) toPost() domain.Post {
	return domain.Post{
		ID:       r.ID,
		Title:    r.Title,
		Excerpt:  r.Excerpt,
		Date:     r.Date,
		ReadTime: r.ReadTime,
		Category: r.Category,
		Tags:     r.Tags,
		Author:   r.Author,
		Image:    r.Image,
		Content:  r.Content,
	}
}
