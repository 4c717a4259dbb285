package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSlides indicates a malformed slide-definition document.
var ErrInvalidSlides = errors.New("invalid slide definitions")

// yamlDeck mirrors a YAML slide-definition document.
type yamlDeck struct {
	Title  string          `yaml:"title"`
	Slides []yamlDirective `yaml:"slides"`
}

type yamlDirective struct {
	Raw      *string `yaml:"raw"`
	Field    *int    `yaml:"field"`
	Values   string  `yaml:"values"`
	Offset   int     `yaml:"offset"`
	Sequence *string `yaml:"sequence"`
	Topic    *string `yaml:"topic"`
	Intro    *bool   `yaml:"intro"`
}

// LoadSlides reads a slide-definition document.
// Files ending in .yaml or .yml are YAML; anything else is XML.
func LoadSlides(path string) (*models.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var deck *models.Deck
	if isYAML(path) {
		deck, err = ParseSlidesYAML(data)
	} else {
		deck, err = ParseSlidesXML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return deck, nil
}

// ParseSlidesXML decodes a <slides> document.
func ParseSlidesXML(data []byte) (*models.Deck, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: missing <slides> element", ErrInvalidSlides)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
		}

		if se, ok := token.(xml.StartElement); ok {
			if se.Name.Local != "slides" {
				return nil, fmt.Errorf("%w: unexpected root <%s>", ErrInvalidSlides, se.Name.Local)
			}
			return parseSlidesElement(decoder, se)
		}
	}
}

// parseSlidesElement walks the children of <slides> in document order.
func parseSlidesElement(decoder *xml.Decoder, start xml.StartElement) (*models.Deck, error) {
	title, ok := attrValue(start, "title")
	if !ok {
		return nil, fmt.Errorf("%w: <slides> requires a title attribute", ErrInvalidSlides)
	}
	deck := &models.Deck{Title: title}

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			d, err := parseDirective(decoder, t)
			if err != nil {
				return nil, err
			}
			deck.Directives = append(deck.Directives, d)
		case xml.EndElement:
			return deck, nil
		}
	}
}

// parseDirective consumes one child element of <slides>.
func parseDirective(decoder *xml.Decoder, start xml.StartElement) (models.Directive, error) {
	switch start.Name.Local {
	case "slide":
		content, err := readSlideContent(decoder)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
		}
		return slideDirective(start, content)

	case "slide-sequence":
		fields, ok := attrValue(start, "fields")
		if !ok || strings.TrimSpace(fields) == "" {
			return nil, fmt.Errorf("%w: <slide-sequence> requires a fields attribute", ErrInvalidSlides)
		}
		if err := decoder.Skip(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
		}
		return models.SequenceDirective{Fields: fields}, nil

	case "topic":
		intro, _ := attrValue(start, "intro-slide")
		text, err := readElementText(decoder)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
		}
		return models.TopicDirective{Text: strings.TrimSpace(text), Intro: intro != "false"}, nil
	}

	return nil, fmt.Errorf("%w: unknown element <%s>", ErrInvalidSlides, start.Name.Local)
}

func slideDirective(start xml.StartElement, content string) (models.Directive, error) {
	if content = strings.TrimSpace(content); content != "" {
		return models.RawDirective{Content: content}, nil
	}

	fieldAttr, ok := attrValue(start, "field")
	if !ok {
		return nil, fmt.Errorf("%w: <slide> requires content or a field attribute", ErrInvalidSlides)
	}
	field, err := strconv.Atoi(strings.TrimSpace(fieldAttr))
	if err != nil || field < 1 {
		return nil, fmt.Errorf("%w: invalid field %q", ErrInvalidSlides, fieldAttr)
	}

	d := models.FieldDirective{Field: field}
	d.Values, _ = attrValue(start, "values")
	if offset, ok := attrValue(start, "offset"); ok && offset != "" {
		d.Offset, err = strconv.Atoi(strings.TrimSpace(offset))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid offset %q", ErrInvalidSlides, offset)
		}
	}
	return d, nil
}

// readSlideContent returns the HTML carried by a <slide> element.
//
// Character data directly inside the slide (entity-escaped or CDATA) is
// taken as decoded HTML. Nested elements are written back as markup, with
// their text and attributes escaped again.
func readSlideContent(decoder *xml.Decoder) (string, error) {
	var b strings.Builder
	depth := 1
	open := false // a start tag is written up to its closing '>'
	for {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}

		if open {
			if _, ok := token.(xml.EndElement); ok && depth > 1 {
				b.WriteString("/>")
				open = false
				depth--
				continue
			}
			b.WriteString(">")
			open = false
		}

		switch t := token.(type) {
		case xml.CharData:
			if depth == 1 {
				b.Write(t)
			} else {
				b.WriteString(html.EscapeString(string(t)))
			}
		case xml.StartElement:
			depth++
			b.WriteString("<" + t.Name.Local)
			for _, attr := range t.Attr {
				b.WriteString(" " + attr.Name.Local + `="` + html.EscapeString(attr.Value) + `"`)
			}
			open = true
		case xml.EndElement:
			depth--
			if depth == 0 {
				return b.String(), nil
			}
			b.WriteString("</" + t.Name.Local + ">")
		case xml.Comment:
			if depth > 1 {
				b.WriteString("<!--" + string(t) + "-->")
			}
		}
	}
}

// ParseSlidesYAML decodes a YAML slide-definition document.
func ParseSlidesYAML(data []byte) (*models.Deck, error) {
	var doc yamlDeck
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
	}
	if doc.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidSlides)
	}

	deck := &models.Deck{Title: doc.Title}
	for i, yd := range doc.Slides {
		d, err := yd.directive()
		if err != nil {
			return nil, fmt.Errorf("%w: slide %d: %v", ErrInvalidSlides, i+1, err)
		}
		deck.Directives = append(deck.Directives, d)
	}
	return deck, nil
}

func (yd yamlDirective) directive() (models.Directive, error) {
	set := 0
	for _, present := range []bool{yd.Raw != nil, yd.Field != nil, yd.Sequence != nil, yd.Topic != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("exactly one of raw, field, sequence or topic must be set")
	}

	switch {
	case yd.Raw != nil:
		return models.RawDirective{Content: strings.TrimSpace(*yd.Raw)}, nil
	case yd.Field != nil:
		if *yd.Field < 1 {
			return nil, fmt.Errorf("invalid field %d", *yd.Field)
		}
		return models.FieldDirective{Field: *yd.Field, Values: yd.Values, Offset: yd.Offset}, nil
	case yd.Sequence != nil:
		return models.SequenceDirective{Fields: *yd.Sequence}, nil
	default:
		return models.TopicDirective{
			Text:  strings.TrimSpace(*yd.Topic),
			Intro: yd.Intro == nil || *yd.Intro,
		}, nil
	}
}

func attrValue(se xml.StartElement, name string) (string, bool) {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// readElementText collects the character data up to the end of the current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}
