package semantics

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/parser"
)

// surveyTable has a text field, two numeric fields and a text field of codes.
func surveyTable() *models.Table {
	return &models.Table{Rows: [][]string{
		{"Comment", "Satisfied", "Visits", "Level"},
		{"great", "1", "10", "b"},
		{"", "2", "2", "a"},
		{"ok", "1", "", "c"},
		{"meh", "", "02"},
	}}
}

func TestResolve(t *testing.T) {
	table := surveyTable()
	bindings := []models.Binding{
		{
			Fields: "2",
			Kind:   models.BindingChart,
			Legend: []models.LegendItem{
				{Key: "1", Label: "Yes", Color: "#00ff00"},
				{Key: "2", Label: "No", Color: "#ff0000"},
			},
			Translations: map[string]string{"Yes": "Ja"},
		},
		{Fields: "4", Kind: models.BindingChart, Translations: map[string]string{"a": "Alpha"}},
	}

	r, err := NewResolver(table, bindings)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	tests := []struct {
		name     string
		pos      int
		expected models.Semantic
	}{
		{"undeclared text", 0, models.TextSemantic{}},
		{"explicit legend", 1, models.ChartSemantic{
			Legend:       bindings[0].Legend,
			Explicit:     true,
			Translations: map[string]string{"Yes": "Ja"},
		}},
		{"undeclared numeric", 2, models.ChartSemantic{
			Legend: []models.LegendItem{
				{Key: "2", Label: "2", Color: ColorEven},
				{Key: "10", Label: "10", Color: ColorOdd},
			},
		}},
		{"declared without legend", 3, models.ChartSemantic{
			Legend: []models.LegendItem{
				{Key: "a", Label: "a", Color: ColorEven},
				{Key: "b", Label: "b", Color: ColorOdd},
				{Key: "c", Label: "c", Color: ColorLast},
			},
			Translations: map[string]string{"a": "Alpha"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.pos)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Resolve(%d) mismatch (-want +got):\n%s", tt.pos, diff)
			}
			if diff := cmp.Diff(got, r.Resolve(tt.pos)); diff != "" {
				t.Errorf("Resolve(%d) is not repeatable:\n%s", tt.pos, diff)
			}
		})
	}
}

func TestResolveReturnsCopies(t *testing.T) {
	bindings := []models.Binding{{
		Fields:       "2",
		Kind:         models.BindingChart,
		Legend:       []models.LegendItem{{Key: "1", Label: "Yes", Color: "#00ff00"}, {Key: "2", Label: "No", Color: "#ff0000"}},
		Translations: map[string]string{"Yes": "Ja"},
	}}
	r, err := NewResolver(surveyTable(), bindings)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	first := r.Resolve(1).(models.ChartSemantic)
	first.Legend[0].Label = "changed"
	first.Translations["Yes"] = "changed"
	first.Translations["No"] = "Nein"

	expected := models.ChartSemantic{
		Legend:       []models.LegendItem{{Key: "1", Label: "Yes", Color: "#00ff00"}, {Key: "2", Label: "No", Color: "#ff0000"}},
		Explicit:     true,
		Translations: map[string]string{"Yes": "Ja"},
	}
	if diff := cmp.Diff(expected, r.Resolve(1)); diff != "" {
		t.Errorf("Resolve affected by caller mutation (-want +got):\n%s", diff)
	}
	if bindings[0].Legend[0].Label != "Yes" {
		t.Errorf("binding legend mutated: %+v", bindings[0].Legend[0])
	}
}

func TestResolveDeclaredText(t *testing.T) {
	r, err := NewResolver(surveyTable(), []models.Binding{{Fields: "3", Kind: models.BindingText}})
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	if _, ok := r.Resolve(2).(models.TextSemantic); !ok {
		t.Errorf("expected text semantics for a numeric field declared as text")
	}
}

func TestInferredLegendSingleValue(t *testing.T) {
	table := &models.Table{Rows: [][]string{{"Q"}, {"5"}, {"5"}}}
	r, err := NewResolver(table, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}

	expected := models.ChartSemantic{Legend: []models.LegendItem{{Key: "5", Label: "5", Color: ColorLast}}}
	if diff := cmp.Diff(expected, r.Resolve(0)); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestNewResolverErrors(t *testing.T) {
	t.Run("duplicate field across declarations", func(t *testing.T) {
		_, err := NewResolver(surveyTable(), []models.Binding{
			{Fields: "1-3", Kind: models.BindingChart},
			{Fields: "3", Kind: models.BindingText},
		})
		if !errors.Is(err, ErrDuplicateDeclaration) {
			t.Errorf("expected ErrDuplicateDeclaration, got %v", err)
		}
	})

	t.Run("malformed range", func(t *testing.T) {
		_, err := NewResolver(surveyTable(), []models.Binding{{Fields: "x", Kind: models.BindingChart}})
		if !errors.Is(err, parser.ErrMalformedRange) {
			t.Errorf("expected ErrMalformedRange, got %v", err)
		}
	})

	t.Run("open range", func(t *testing.T) {
		_, err := NewResolver(surveyTable(), []models.Binding{{Fields: "2-", Kind: models.BindingChart}})
		if !errors.Is(err, parser.ErrOpenRange) {
			t.Errorf("expected ErrOpenRange, got %v", err)
		}
	})
}
