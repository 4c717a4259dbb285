package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// InferFieldType reports whether the field at pos is numeric.
// A field is numeric when every non-empty value is a digit string; a field
// without values is text.
func InferFieldType(t *models.Table, pos int) models.FieldType {
	numeric := false
	for rec := 0; rec < t.RecordCount(); rec++ {
		value := t.Cell(rec, pos)
		if value == "" {
			continue
		}
		if !digitsPattern.MatchString(value) {
			return models.FieldText
		}
		numeric = true
	}

	if numeric {
		return models.FieldNumeric
	}
	return models.FieldText
}

// FieldValues returns the non-empty values of the field at pos in record order.
// Values of numeric fields are normalized as integers.
func FieldValues(t *models.Table, pos int) []string {
	numeric := InferFieldType(t, pos) == models.FieldNumeric

	var values []string
	for rec := 0; rec < t.RecordCount(); rec++ {
		value := t.Cell(rec, pos)
		if value == "" {
			continue
		}
		if numeric {
			value = normalizeInteger(value)
		}
		values = append(values, value)
	}
	return values
}

// normalizeInteger drops leading zeros from a digit string.
func normalizeInteger(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// CompareIntegers orders two normalized digit strings numerically.
func CompareIntegers(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
