// Package semantics decides how each field of a table is presented.
package semantics

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/parser"
)

// ErrDuplicateDeclaration indicates a field claimed by more than one declaration.
var ErrDuplicateDeclaration = errors.New("duplicate semantics for field")

// Colors assigned to inferred legend entries.
const (
	ColorEven = "#dfdfdf"
	ColorOdd  = "#efefef"
	ColorLast = "#cfcfcf"
)

// Resolver resolves field semantics from declarations and the table data.
type Resolver struct {
	table    *models.Table
	declared map[int]models.Binding
}

// NewResolver indexes bindings by field.
// A field selected by two bindings is an error.
func NewResolver(table *models.Table, bindings []models.Binding) (*Resolver, error) {
	declared := make(map[int]models.Binding)
	for _, b := range bindings {
		fields, err := parser.ParseRange(b.Fields, parser.NoUpperBound)
		if err != nil {
			return nil, fmt.Errorf("declaration %q: %w", b.Fields, err)
		}
		for _, pos := range fields {
			if _, ok := declared[pos]; ok {
				return nil, fmt.Errorf("%w %d", ErrDuplicateDeclaration, pos+1)
			}
			declared[pos] = b
		}
	}
	return &Resolver{table: table, declared: declared}, nil
}

// Resolve returns the semantics of the field at pos.
//
// A declared chart with a legend is used as authored. A declared chart
// without legend, or an undeclared numeric field, gets a legend inferred
// from the field's distinct values. Everything else is text.
// The returned semantic shares no state with the resolver.
func (r *Resolver) Resolve(pos int) models.Semantic {
	b, ok := r.declared[pos]
	switch {
	case ok && b.Kind == models.BindingText:
		return models.TextSemantic{}
	case ok && len(b.Legend) > 0:
		return models.ChartSemantic{
			Legend:       slices.Clone(b.Legend),
			Explicit:     true,
			Translations: maps.Clone(b.Translations),
		}
	case ok || parser.InferFieldType(r.table, pos) == models.FieldNumeric:
		return models.ChartSemantic{
			Legend:       r.inferLegend(pos),
			Translations: maps.Clone(b.Translations),
		}
	}
	return models.TextSemantic{}
}

// inferLegend builds a legend from the distinct values of a field, sorted
// ascending (numerically for numeric fields), with alternating neutral colors.
func (r *Resolver) inferLegend(pos int) []models.LegendItem {
	seen := make(map[string]bool)
	var values []string
	for _, v := range parser.FieldValues(r.table, pos) {
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}

	if parser.InferFieldType(r.table, pos) == models.FieldNumeric {
		sort.Slice(values, func(i, j int) bool { return parser.CompareIntegers(values[i], values[j]) < 0 })
	} else {
		sort.Strings(values)
	}

	legend := make([]models.LegendItem, len(values))
	for i, v := range values {
		color := ColorEven
		if i%2 == 1 {
			color = ColorOdd
		}
		legend[i] = models.LegendItem{Key: v, Label: v, Color: color}
	}
	if len(legend)%2 == 1 {
		legend[len(legend)-1].Color = ColorLast
	}
	return legend
}
