package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
)

const semanticsXML = `<?xml version="1.0"?>
<semantics>
  <chart fields="2-3">
    <item key="1" color="#8fbc8f">Yes</item>
    <item key="2" color="#cd5c5c"> No </item>
    <translate from="Yes">Ja</translate>
  </chart>
  <chart fields="5">
    <translate from="1">eins</translate>
  </chart>
  <text fields="6"/>
</semantics>`

const semanticsYAML = `semantics:
  - kind: chart
    fields: "2-3"
    legend:
      - {key: "1", label: "Yes", color: "#8fbc8f"}
      - {key: "2", label: "No", color: "#cd5c5c"}
    translate:
      "Yes": Ja
  - kind: chart
    fields: "5"
    translate:
      "1": eins
  - kind: text
    fields: "6"
`

func expectedBindings() []models.Binding {
	return []models.Binding{
		{
			Fields: "2-3",
			Kind:   models.BindingChart,
			Legend: []models.LegendItem{
				{Key: "1", Label: "Yes", Color: "#8fbc8f"},
				{Key: "2", Label: "No", Color: "#cd5c5c"},
			},
			Translations: map[string]string{"Yes": "Ja"},
		},
		{
			Fields:       "5",
			Kind:         models.BindingChart,
			Translations: map[string]string{"1": "eins"},
		},
		{Fields: "6", Kind: models.BindingText},
	}
}

func TestParseDeclarations(t *testing.T) {
	t.Run("xml", func(t *testing.T) {
		bindings, err := ParseDeclarationsXML([]byte(semanticsXML))
		if err != nil {
			t.Fatalf("ParseDeclarationsXML failed: %v", err)
		}
		if diff := cmp.Diff(expectedBindings(), bindings); diff != "" {
			t.Errorf("bindings mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		bindings, err := ParseDeclarationsYAML([]byte(semanticsYAML))
		if err != nil {
			t.Fatalf("ParseDeclarationsYAML failed: %v", err)
		}
		if diff := cmp.Diff(expectedBindings(), bindings); diff != "" {
			t.Errorf("bindings mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLoadDeclarationsByExtension(t *testing.T) {
	tmpDir := t.TempDir()
	xmlPath := filepath.Join(tmpDir, "semantics.xml")
	yamlPath := filepath.Join(tmpDir, "semantics.yml")
	if err := os.WriteFile(xmlPath, []byte(semanticsXML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte(semanticsYAML), 0644); err != nil {
		t.Fatal(err)
	}

	fromXML, err := LoadDeclarations(xmlPath)
	if err != nil {
		t.Fatalf("LoadDeclarations(xml) failed: %v", err)
	}
	fromYAML, err := LoadDeclarations(yamlPath)
	if err != nil {
		t.Fatalf("LoadDeclarations(yaml) failed: %v", err)
	}
	if diff := cmp.Diff(fromXML, fromYAML); diff != "" {
		t.Errorf("formats disagree (-xml +yaml):\n%s", diff)
	}
}

func TestParseDeclarationsNormalizesColors(t *testing.T) {
	doc := `<semantics><chart fields="1">` +
		`<item key="1" color="green">Yes</item>` +
		`<item key="2" color="Red">No</item>` +
		`<item key="3" color="#ABC">Maybe</item>` +
		`</chart></semantics>`

	bindings, err := ParseDeclarationsXML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseDeclarationsXML failed: %v", err)
	}
	want := []models.LegendItem{
		{Key: "1", Label: "Yes", Color: "#008000"},
		{Key: "2", Label: "No", Color: "#ff0000"},
		{Key: "3", Label: "Maybe", Color: "#aabbcc"},
	}
	if diff := cmp.Diff(want, bindings[0].Legend); diff != "" {
		t.Errorf("legend mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDeclarationsErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"duplicate legend key", `<semantics><chart fields="1"><item key="1" color="#fff">A</item><item key="1" color="#000">B</item></chart></semantics>`},
		{"missing key", `<semantics><chart fields="1"><item color="#fff">A</item></chart></semantics>`},
		{"unknown color name", `<semantics><chart fields="1"><item key="1" color="reddish">A</item></chart></semantics>`},
		{"malformed hex color", `<semantics><chart fields="1"><item key="1" color="#12">A</item></chart></semantics>`},
		{"missing fields", `<semantics><chart><item key="1" color="#fff">A</item></chart></semantics>`},
		{"translate without from", `<semantics><chart fields="1"><translate>x</translate></chart></semantics>`},
		{"wrong root", `<slides/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDeclarationsXML([]byte(tt.xml)); !errors.Is(err, ErrInvalidDeclaration) {
				t.Errorf("expected ErrInvalidDeclaration, got %v", err)
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		doc := "semantics:\n  - kind: histogram\n    fields: \"1\"\n"
		if _, err := ParseDeclarationsYAML([]byte(doc)); !errors.Is(err, ErrInvalidDeclaration) {
			t.Errorf("expected ErrInvalidDeclaration, got %v", err)
		}
	})
}
