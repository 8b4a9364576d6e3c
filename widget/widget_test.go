package widget

import (
	"testing"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/source"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
	"github.com/google/go-cmp/cmp"
)

var card = &java.ClassModel{Name: "com.example.Card", SimpleName: "Card"}

func ann(typ string, kv ...any) java.AnnotationModel {
	a := java.AnnotationModel{Type: typ, Values: map[string]any{}}
	for i := 0; i+1 < len(kv); i += 2 {
		a.Values[kv[i].(string)] = kv[i+1]
	}
	return a
}

func TestRender(t *testing.T) {
	src := source.FromField(card, java.FieldModel{
		Name: "heading",
		Type: java.TypeModel{Name: "String"},
		Annotations: []java.AnnotationModel{
			ann("DialogField", "label", "Heading", "required", true, "ranking", 2),
			ann("TextField", "emptyText", "Enter a heading"),
		},
	})
	items := target.New("items")

	node := Render(src, items)
	if node.Name() != "heading" {
		t.Errorf("Name() = %q, want %q", node.Name(), "heading")
	}
	want := []target.Attr{
		{Key: "jcr:primaryType", Value: "nt:unstructured"},
		{Key: "sling:resourceType", Value: "granite/ui/components/coral/foundation/form/textfield"},
		{Key: "name", Value: "./heading"},
		{Key: "fieldLabel", Value: "Heading"},
		{Key: "required", Value: "{Boolean}true"},
		{Key: "emptyText", Value: "Enter a heading"},
	}
	if diff := cmp.Diff(want, node.Attributes()); diff != "" {
		t.Errorf("Attributes() mismatch (-want +got):\n%s", diff)
	}

	// A second member with the same name gets a unique node.
	if again := Render(src, items); again.Name() != "heading_1" {
		t.Errorf("second Render() name = %q, want %q", again.Name(), "heading_1")
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		name     string
		src      *source.Source
		property string
		stored   string
		node     string
	}{
		{
			"getter",
			source.FromMethod(card, java.MethodModel{Name: "getLinkUrl", Annotations: []java.AnnotationModel{ann("PathField")}}),
			"linkUrl", "./linkUrl", "linkUrl",
		},
		{
			"boolean getter",
			source.FromMethod(card, java.MethodModel{Name: "isShown", Annotations: []java.AnnotationModel{ann("Checkbox")}}),
			"shown", "./shown", "shown",
		},
		{
			"not a getter",
			source.FromMethod(card, java.MethodModel{Name: "island", Annotations: []java.AnnotationModel{ann("TextField")}}),
			"island", "./island", "island",
		},
		{
			"explicit name",
			source.FromField(card, java.FieldModel{Name: "text", Annotations: []java.AnnotationModel{ann("DialogField", "name", "./jcr:content/title")}}),
			"title", "./jcr:content/title", "title",
		},
		{
			"relative name",
			source.FromField(card, java.FieldModel{Name: "text", Annotations: []java.AnnotationModel{ann("DialogField", "name", "caption")}}),
			"caption", "./caption", "caption",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropertyName(tt.src); got != tt.property {
				t.Errorf("PropertyName() = %q, want %q", got, tt.property)
			}
			if got := StoredName(tt.src); got != tt.stored {
				t.Errorf("StoredName() = %q, want %q", got, tt.stored)
			}
			if got := NodeName(tt.src); got != tt.node {
				t.Errorf("NodeName() = %q, want %q", got, tt.node)
			}
		})
	}
}

func TestResourceType(t *testing.T) {
	src := source.FromField(card, java.FieldModel{Name: "plain", Annotations: []java.AnnotationModel{ann("DialogField")}})
	if got := ResourceType(src); got != "" {
		t.Errorf("ResourceType() = %q, want empty", got)
	}
	node := Render(src, target.New("items"))
	if node.HasAttr("sling:resourceType") {
		t.Error("member without widget annotation got a resource type")
	}
}
