package java

import (
	"strings"
	"testing"
)

const cardYAML = `
name: com.example.Card
superClass: com.example.Base
annotations:
  - type: Tabs
    values:
      value:
        - title: Main
        - title: Extra
fields:
  - name: heading
    type: {name: String}
    annotations:
      - type: TextField
      - type: DialogField
        values: {label: Heading, ranking: 2}
nested:
  - name: Info
    annotations:
      - type: Tab
        values: {title: Info}
---
- name: com.example.Base
  fields:
    - name: items
      type: {name: String, arrayDepth: 1}
`

func TestClassModelsFromYAML(t *testing.T) {
	models, err := ClassModelsFromYAML(strings.NewReader(cardYAML))
	if err != nil {
		t.Fatalf("ClassModelsFromYAML() error: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("len(models) = %d, want 2", len(models))
	}

	idx := NewIndex(models...)
	card := idx.Lookup("com.example.Card")
	if card == nil {
		t.Fatal("Lookup(Card) = nil")
	}
	tabs, ok := card.Annotation("Tabs")
	if !ok {
		t.Fatal("Card has no Tabs annotation")
	}
	if got := len(tabs.Annotations("value", "Tab")); got != 2 {
		t.Errorf("len(Tabs.value) = %d, want 2", got)
	}

	f := card.Fields[0]
	df, ok := f.Annotation("DialogField")
	if !ok {
		t.Fatal("heading has no DialogField annotation")
	}
	if n, _ := df.Int("ranking"); n != 2 {
		t.Errorf("ranking = %d, want 2", n)
	}
	if got := f.Type.String(); got != "String" {
		t.Errorf("Type = %q, want %q", got, "String")
	}

	if idx.Lookup("com.example.Card.Info") == nil {
		t.Error("nested class Info was not indexed")
	}
	base := idx.Lookup("com.example.Base")
	if base == nil {
		t.Fatal("Lookup(Base) = nil")
	}
	if got := base.Fields[0].Type.String(); got != "String[]" {
		t.Errorf("Base.items type = %q, want %q", got, "String[]")
	}
}

func TestClassModelsFromJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"object", `{"name": "com.example.A"}`, 1},
		{"array", `[{"name": "com.example.A"}, {"name": "com.example.B"}]`, 2},
		{"empty", `   `, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models, err := ClassModelsFromJSON(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ClassModelsFromJSON() error: %v", err)
			}
			if len(models) != tt.want {
				t.Errorf("len(models) = %d, want %d", len(models), tt.want)
			}
		})
	}
}

func TestClassModelsFromJSONNumbers(t *testing.T) {
	input := `{"name": "A", "fields": [{"name": "x", "type": {"name": "int"},
		"annotations": [{"type": "DialogField", "values": {"ranking": 5}}]}]}`
	models, err := ClassModelsFromJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ClassModelsFromJSON() error: %v", err)
	}
	df, _ := models[0].Fields[0].Annotation("DialogField")
	if n, ok := df.Int("ranking"); !ok || n != 5 {
		t.Errorf("Int(ranking) = %d, %v, want 5, true", n, ok)
	}
	if !models[0].Fields[0].Type.IsPrimitive() {
		t.Error("int is not primitive")
	}
}

func TestIsDescriptorFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a.json": true,
		"a.YAML": true,
		"a.yml":  true,
		"a.java": false,
		"a":      false,
	} {
		if got := IsDescriptorFile(path); got != want {
			t.Errorf("IsDescriptorFile(%q) = %v, want %v", path, got, want)
		}
	}
}
