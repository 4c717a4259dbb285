package csv2slides

import (
	_ "embed"
	"os"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/parser"
)

//go:embed assets/template.html
var defaultTemplate string

// DefaultTemplate returns the built-in page template.
func DefaultTemplate() string {
	return defaultTemplate
}

// loadTemplate reads the page template at path, or the built-in one when path is empty.
func loadTemplate(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RenderPage substitutes $title and $slides_html into tmpl.
func RenderPage(tmpl, title, slidesHTML string) (string, error) {
	return parser.Substitute(tmpl, map[string]string{
		"title":       title,
		"slides_html": slidesHTML,
	})
}
