package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
)

func column(values ...string) *models.Table {
	rows := [][]string{{"Field"}}
	for _, v := range values {
		rows = append(rows, []string{v})
	}
	return &models.Table{Rows: rows}
}

func TestInferFieldType(t *testing.T) {
	tests := []struct {
		name     string
		table    *models.Table
		expected models.FieldType
	}{
		{"digits", column("1", "2", "3"), models.FieldNumeric},
		{"mixed", column("1", "a", "3"), models.FieldText},
		{"empty values", column("", "", ""), models.FieldText},
		{"no records", column(), models.FieldText},
		{"digits with gaps", column("", "7", ""), models.FieldNumeric},
		{"negative", column("-1", "2"), models.FieldText},
		{"decimal", column("1.5"), models.FieldText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := tt.table.FieldCount() - 1
			if got := InferFieldType(tt.table, pos); got != tt.expected {
				t.Errorf("InferFieldType() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestInferFieldTypeShortRowsNumeric(t *testing.T) {
	table := &models.Table{Rows: [][]string{{"A", "B"}, {"x"}, {"y", "5"}}}
	if got := InferFieldType(table, 1); got != models.FieldNumeric {
		t.Errorf("InferFieldType() = %q, expected numeric", got)
	}
}

func TestFieldValues(t *testing.T) {
	tests := []struct {
		name     string
		table    *models.Table
		expected []string
	}{
		{"numeric normalized", column("007", "", "10", "0", "00"), []string{"7", "10", "0", "0"}},
		{"text verbatim", column("007", "", "abc"), []string{"007", "abc"}},
		{"none", column("", ""), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, FieldValues(tt.table, 0)); diff != "" {
				t.Errorf("FieldValues() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompareIntegers(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"5", "5", 0},
		{"12", "13", -1},
	}

	for _, tt := range tests {
		if got := CompareIntegers(tt.a, tt.b); got != tt.expected {
			t.Errorf("CompareIntegers(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.expected)
		}
	}
}
