package placement

import (
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/source"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
)

var testClass = &java.ClassModel{Name: "com.example.Card", SimpleName: "Card"}

func ann(typ string, kv ...any) java.AnnotationModel {
	a := java.AnnotationModel{Type: typ, Values: map[string]any{}}
	for i := 0; i+1 < len(kv); i += 2 {
		a.Values[kv[i].(string)] = kv[i+1]
	}
	return a
}

func tab(title string) java.AnnotationModel {
	return ann(api.Tab, "title", title)
}

// tabList is the value of a Tabs annotation listing the given titles.
func tabList(titles ...string) []any {
	result := make([]any, len(titles))
	for i, title := range titles {
		result[i] = map[string]any{"title": title}
	}
	return result
}

func textField(name string, extra ...java.AnnotationModel) java.FieldModel {
	return java.FieldModel{
		Name:        name,
		Type:        java.TypeModel{Name: "String"},
		Annotations: append([]java.AnnotationModel{ann(api.TextField)}, extra...),
	}
}

func placed(name, directive string) *source.Source {
	f := textField(name)
	if directive != "" {
		f.Annotations = append(f.Annotations, ann(api.Place, "value", directive))
	}
	return source.FromField(testClass, f)
}

func ranked(name, directive string, rank int) *source.Source {
	f := textField(name, ann(api.DialogField, "ranking", rank))
	if directive != "" {
		f.Annotations = append(f.Annotations, ann(api.Place, "value", directive))
	}
	return source.FromField(testClass, f)
}

func list(sources ...*source.Source) []*source.Source {
	return sources
}

func sourceNames(sources []*source.Source) []string {
	var result []string
	for _, s := range sources {
		result = append(result, s.Name())
	}
	return result
}

func childNames(t *target.Target) []string {
	if t == nil {
		return nil
	}
	var result []string
	for _, c := range t.Children() {
		result = append(result, c.Name())
	}
	return result
}

// nameRenderer renders every member as an empty node named after it.
type nameRenderer struct {
	rendered []string
}

func (r *nameRenderer) Render(member *source.Source, items *target.Target) *target.Target {
	r.rendered = append(r.rendered, member.Name())
	return items.CreateUniqueTarget(member.Name())
}
