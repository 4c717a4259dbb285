package models

// Semantic describes how a field is presented.
// It is a closed union: ChartSemantic or TextSemantic.
type Semantic interface {
	semantic()
}

// LegendItem maps a raw field value to a chart slice identity.
type LegendItem struct {
	// Key is the raw value matched against field values.
	Key string `json:"key" yaml:"key"`
	// Label is the display name of the slice.
	Label string `json:"label" yaml:"label"`
	// Color is the CSS hex fill color of the slice.
	Color string `json:"color" yaml:"color"`
}

// ChartSemantic presents a field as a pie chart.
type ChartSemantic struct {
	// Legend is the ordered list of slices.
	Legend []LegendItem `json:"legend"`
	// Explicit reports whether the legend was authored rather than inferred.
	Explicit bool `json:"explicit"`
	// Translations maps a label to its displayed translation.
	Translations map[string]string `json:"translations,omitempty"`
}

// TextSemantic presents a field as an enumerated list of answers.
type TextSemantic struct{}

func (ChartSemantic) semantic() {}
func (TextSemantic) semantic()  {}

// Translate returns the translation of label, or label itself.
func (c ChartSemantic) Translate(label string) string {
	if t, ok := c.Translations[label]; ok {
		return t
	}
	return label
}

// Labels returns the legend labels in legend order.
func (c ChartSemantic) Labels() []string {
	labels := make([]string, len(c.Legend))
	for i, item := range c.Legend {
		labels[i] = item.Label
	}
	return labels
}
