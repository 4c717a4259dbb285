package models

// BindingKind is the declared kind of a semantics binding.
type BindingKind string

const (
	// BindingChart declares chart semantics.
	BindingChart BindingKind = "chart"
	// BindingText declares text semantics.
	BindingText BindingKind = "text"
)

// Binding attaches declared semantics to a range of fields.
// Bindings are the format-independent form of a declarations document.
type Binding struct {
	// Fields is the range expression selecting 1-based field numbers (e.g. "2-5,7").
	Fields string `json:"fields"`
	// Kind is the declared semantic kind.
	Kind BindingKind `json:"kind"`
	// Legend is the authored legend; empty means infer from the data.
	Legend []LegendItem `json:"legend,omitempty"`
	// Translations maps a label to its displayed translation.
	Translations map[string]string `json:"translations,omitempty"`
}
