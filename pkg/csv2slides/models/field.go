package models

// FieldType is the inferred value type of a field.
type FieldType string

const (
	// FieldText marks a field holding at least one non-numeric value, or no values at all.
	FieldText FieldType = "text"
	// FieldNumeric marks a field whose non-empty values are all digit strings.
	FieldNumeric FieldType = "numeric"
)
