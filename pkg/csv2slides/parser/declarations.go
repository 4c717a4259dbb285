package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDeclaration indicates a malformed declarations document.
var ErrInvalidDeclaration = errors.New("invalid declaration")

// xmlSemantics mirrors the root of an XML declarations document.
type xmlSemantics struct {
	XMLName xml.Name    `xml:"semantics"`
	Charts  []xmlChart  `xml:"chart"`
	Texts   []xmlFields `xml:"text"`
}

type xmlChart struct {
	Fields       string         `xml:"fields,attr"`
	Items        []xmlItem      `xml:"item"`
	Translations []xmlTranslate `xml:"translate"`
}

type xmlItem struct {
	Key   string `xml:"key,attr"`
	Color string `xml:"color,attr"`
	Label string `xml:",chardata"`
}

type xmlTranslate struct {
	From string `xml:"from,attr"`
	To   string `xml:",chardata"`
}

type xmlFields struct {
	Fields string `xml:"fields,attr"`
}

// yamlSemantics mirrors a YAML declarations document.
type yamlSemantics struct {
	Semantics []yamlBinding `yaml:"semantics"`
}

type yamlBinding struct {
	Kind      string              `yaml:"kind"`
	Fields    string              `yaml:"fields"`
	Legend    []models.LegendItem `yaml:"legend"`
	Translate map[string]string   `yaml:"translate"`
}

// LoadDeclarations reads a declarations document.
// Files ending in .yaml or .yml are YAML; anything else is XML.
func LoadDeclarations(path string) ([]models.Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bindings []models.Binding
	if isYAML(path) {
		bindings, err = ParseDeclarationsYAML(data)
	} else {
		bindings, err = ParseDeclarationsXML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bindings, nil
}

// ParseDeclarationsXML decodes a <semantics> document into bindings.
func ParseDeclarationsXML(data []byte) ([]models.Binding, error) {
	var doc xmlSemantics
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeclaration, err)
	}

	var bindings []models.Binding
	for _, chart := range doc.Charts {
		b := models.Binding{
			Fields:       chart.Fields,
			Kind:         models.BindingChart,
			Translations: make(map[string]string),
		}
		for _, item := range chart.Items {
			b.Legend = append(b.Legend, models.LegendItem{
				Key:   item.Key,
				Label: strings.TrimSpace(item.Label),
				Color: item.Color,
			})
		}
		for _, tr := range chart.Translations {
			if tr.From == "" {
				return nil, fmt.Errorf("%w: translate without from in chart %q", ErrInvalidDeclaration, chart.Fields)
			}
			b.Translations[tr.From] = strings.TrimSpace(tr.To)
		}
		bindings = append(bindings, b)
	}
	for _, text := range doc.Texts {
		bindings = append(bindings, models.Binding{Fields: text.Fields, Kind: models.BindingText})
	}

	if err := validateBindings(bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

// ParseDeclarationsYAML decodes a YAML declarations document into bindings.
func ParseDeclarationsYAML(data []byte) ([]models.Binding, error) {
	var doc yamlSemantics
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeclaration, err)
	}

	bindings := make([]models.Binding, 0, len(doc.Semantics))
	for _, yb := range doc.Semantics {
		kind := models.BindingKind(yb.Kind)
		switch kind {
		case models.BindingChart:
			translations := yb.Translate
			if translations == nil {
				translations = make(map[string]string)
			}
			bindings = append(bindings, models.Binding{
				Fields:       yb.Fields,
				Kind:         kind,
				Legend:       yb.Legend,
				Translations: translations,
			})
		case models.BindingText:
			bindings = append(bindings, models.Binding{Fields: yb.Fields, Kind: kind})
		default:
			return nil, fmt.Errorf("%w: unknown semantic kind %q", ErrInvalidDeclaration, yb.Kind)
		}
	}

	if err := validateBindings(bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

// validateBindings checks legends: keys and colors are required and keys are
// unique per legend. Legend colors are rewritten to "#rrggbb".
func validateBindings(bindings []models.Binding) error {
	for _, b := range bindings {
		if strings.TrimSpace(b.Fields) == "" {
			return fmt.Errorf("%w: %s declaration without fields", ErrInvalidDeclaration, b.Kind)
		}
		keys := make(map[string]bool, len(b.Legend))
		for i, item := range b.Legend {
			if item.Key == "" {
				return fmt.Errorf("%w: legend item %q in %q has no key", ErrInvalidDeclaration, item.Label, b.Fields)
			}
			if keys[item.Key] {
				return fmt.Errorf("%w: duplicate legend key %q in %q", ErrInvalidDeclaration, item.Key, b.Fields)
			}
			keys[item.Key] = true
			color, err := NormalizeColor(item.Color)
			if err != nil {
				return fmt.Errorf("%w: legend key %q in %q: %v", ErrInvalidDeclaration, item.Key, b.Fields, err)
			}
			b.Legend[i].Color = color
		}
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
