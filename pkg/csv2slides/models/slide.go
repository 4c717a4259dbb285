package models

// Slide is one assembled slide.
// It is a closed union: RawSlide or FieldSlide.
type Slide interface {
	slide()
}

// RawSlide carries literal HTML content.
type RawSlide struct {
	Content string `json:"content"`
}

// FieldSlide presents one field.
type FieldSlide struct {
	// Field is the zero-based field index.
	Field int `json:"field"`
	// Topic is the topic active when the slide was declared.
	Topic string `json:"topic"`
	// Subset reports whether Selected restricts the displayed answers.
	Subset bool `json:"subset,omitempty"`
	// Selected lists zero-based answer positions to display when Subset is set.
	Selected []int `json:"selected,omitempty"`
	// Offset shifts the starting number of the answer list.
	Offset int `json:"offset,omitempty"`
}

func (RawSlide) slide()   {}
func (FieldSlide) slide() {}
