package slides

import (
	"fmt"
	"html"
	"strings"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/charts"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/parser"
)

// Resolver provides field semantics.
type Resolver interface {
	Resolve(pos int) models.Semantic
}

// Renderer renders slides as HTML.
type Renderer struct {
	table    *models.Table
	resolver Resolver
}

// NewRenderer creates a Renderer for table.
func NewRenderer(table *models.Table, resolver Resolver) *Renderer {
	return &Renderer{table: table, resolver: resolver}
}

// RenderSlides wraps each slide in a <section> and joins them in order.
func (r *Renderer) RenderSlides(slides []models.Slide) (string, error) {
	sections := make([]string, 0, len(slides))
	for _, s := range slides {
		body, err := r.RenderSlide(s)
		if err != nil {
			return "", err
		}
		sections = append(sections, "<section>"+body+"</section>")
	}
	return strings.Join(sections, "\n"), nil
}

// RenderSlide returns the inner HTML of a single slide.
func (r *Renderer) RenderSlide(s models.Slide) (string, error) {
	switch s := s.(type) {
	case models.RawSlide:
		return s.Content, nil
	case models.FieldSlide:
		return r.renderField(s)
	}
	return "", fmt.Errorf("%w: unsupported slide %T", ErrInvalidSlide, s)
}

func (r *Renderer) renderField(s models.FieldSlide) (string, error) {
	var content string
	switch sem := r.resolver.Resolve(s.Field).(type) {
	case models.ChartSemantic:
		if s.Subset {
			return "", fmt.Errorf("%w: field %d is a chart and cannot select values", ErrInvalidSlide, s.Field+1)
		}
		content = chartContent(s.Field, sem)
	case models.TextSemantic:
		content = r.textContent(s)
	default:
		return "", fmt.Errorf("%w: unknown semantic %T for field %d", ErrInvalidSlide, sem, s.Field+1)
	}

	return fmt.Sprintf("\n<h6>%s</h6>\n<p class=\"field_title\">%s</p>\n%s\n",
		html.EscapeString(s.Topic), html.EscapeString(r.table.FieldTitle(s.Field)), content), nil
}

// chartContent embeds the chart image, preceded by the options of an authored legend.
func chartContent(pos int, sem models.ChartSemantic) string {
	var b strings.Builder
	if sem.Explicit {
		labels := sem.Labels()
		for i, label := range labels {
			labels[i] = html.EscapeString(label)
		}
		b.WriteString("<p><b>Options:</b> " + strings.Join(labels, ", ") + "</p>")
	}
	fmt.Fprintf(&b, `<img src="%s">`, charts.FileName(pos))
	return b.String()
}

// textContent lists the selected answers, numbered from 1+offset.
func (r *Renderer) textContent(s models.FieldSlide) string {
	values := parser.FieldValues(r.table, s.Field)

	selected := make(map[int]bool, len(s.Selected))
	for _, idx := range s.Selected {
		selected[idx] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p><b>%d answer(s)</b></p>", len(values))
	fmt.Fprintf(&b, `<ol start="%d">`, 1+s.Offset)
	for idx, v := range values {
		if s.Subset && !selected[idx] {
			continue
		}
		b.WriteString("<li>" + html.EscapeString(v) + "</li>")
	}
	b.WriteString("</ol>")
	return b.String()
}
