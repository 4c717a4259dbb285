package models

// Directive is one element of a slide-definition document.
// It is a closed union: RawDirective, FieldDirective, SequenceDirective or TopicDirective.
type Directive interface {
	directive()
}

// RawDirective emits a literal slide. Content is itself a template.
type RawDirective struct {
	Content string `json:"content"`
}

// FieldDirective emits one slide for a single field.
type FieldDirective struct {
	// Field is the 1-based field number.
	Field int `json:"field"`
	// Values is an optional range expression over the field's non-empty values.
	Values string `json:"values,omitempty"`
	// Offset shifts the starting number of the answer list.
	Offset int `json:"offset,omitempty"`
}

// SequenceDirective emits one slide per non-empty field in a range.
type SequenceDirective struct {
	// Fields is a range expression; open ranges end at the last field.
	Fields string `json:"fields"`
}

// TopicDirective sets the topic of subsequent field slides.
type TopicDirective struct {
	// Text is the topic label; empty clears the topic.
	Text string `json:"text"`
	// Intro emits a heading slide for a non-empty topic.
	Intro bool `json:"intro"`
}

func (RawDirective) directive()      {}
func (FieldDirective) directive()    {}
func (SequenceDirective) directive() {}
func (TopicDirective) directive()    {}

// Deck is the format-independent form of a slide-definition document.
type Deck struct {
	// Title is the presentation title.
	Title string `json:"title"`
	// Directives lists the slide directives in document order.
	Directives []Directive `json:"directives"`
}
