// Package slides assembles slide definitions into an ordered list of slides
// and renders them as HTML sections.
package slides

import (
	"errors"
	"fmt"
	"html"
	"strconv"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/parser"
)

// ErrInvalidSlide indicates a slide directive that does not fit the table.
var ErrInvalidSlide = errors.New("invalid slide")

// assembly is the accumulator threaded through the directive fold.
type assembly struct {
	topic  string
	slides []models.Slide
}

// Assemble expands the directives of deck into slides, in document order.
// Field slides carry the topic set by the closest preceding topic directive.
// rawDataURL is exposed to raw slides as $rawdata_url.
func Assemble(deck *models.Deck, table *models.Table, rawDataURL string) ([]models.Slide, error) {
	vars := map[string]string{
		"title":       deck.Title,
		"rows":        strconv.Itoa(table.RecordCount()),
		"rawdata_url": rawDataURL,
	}

	var acc assembly
	for i, d := range deck.Directives {
		var err error
		acc, err = acc.apply(d, table, vars)
		if err != nil {
			return nil, fmt.Errorf("directive %d: %w", i+1, err)
		}
	}
	return acc.slides, nil
}

func (a assembly) apply(d models.Directive, table *models.Table, vars map[string]string) (assembly, error) {
	switch d := d.(type) {
	case models.RawDirective:
		content, err := parser.Substitute(d.Content, vars)
		if err != nil {
			return a, err
		}
		a.slides = append(a.slides, models.RawSlide{Content: content})

	case models.FieldDirective:
		s, err := fieldSlide(d, a.topic, table)
		if err != nil {
			return a, err
		}
		a.slides = append(a.slides, s)

	case models.SequenceDirective:
		fields, err := parser.ParseRange(d.Fields, table.FieldCount())
		if err != nil {
			return a, err
		}
		for _, pos := range fields {
			if pos >= table.FieldCount() {
				return a, fmt.Errorf("%w: field %d outside table with %d fields", ErrInvalidSlide, pos+1, table.FieldCount())
			}
			if len(parser.FieldValues(table, pos)) == 0 {
				continue
			}
			a.slides = append(a.slides, models.FieldSlide{Field: pos, Topic: a.topic})
		}

	case models.TopicDirective:
		a.topic = d.Text
		if d.Text != "" && d.Intro {
			a.slides = append(a.slides, models.RawSlide{Content: "<h1>" + html.EscapeString(d.Text) + "</h1>"})
		}

	default:
		return a, fmt.Errorf("%w: unsupported directive %T", ErrInvalidSlide, d)
	}
	return a, nil
}

func fieldSlide(d models.FieldDirective, topic string, table *models.Table) (models.FieldSlide, error) {
	pos := d.Field - 1
	if pos < 0 || pos >= table.FieldCount() {
		return models.FieldSlide{}, fmt.Errorf("%w: field %d outside table with %d fields", ErrInvalidSlide, d.Field, table.FieldCount())
	}

	s := models.FieldSlide{Field: pos, Topic: topic, Offset: d.Offset}
	if d.Values != "" {
		selected, err := parser.ParseRange(d.Values, len(parser.FieldValues(table, pos)))
		if err != nil {
			return models.FieldSlide{}, fmt.Errorf("field %d values: %w", d.Field, err)
		}
		s.Subset = true
		s.Selected = selected
	}
	return s, nil
}
