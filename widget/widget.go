// Package widget renders a single member as a dialog field node.
package widget

import (
	"strings"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/source"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
)

// dialogFieldProperties maps DialogField elements to node properties.
var dialogFieldProperties = map[string]string{
	"label":        api.PropFieldLabel,
	"description":  api.PropFieldDescription,
	"required":     api.PropRequired,
	"disabled":     "disabled",
	"renderHidden": "renderHidden",
	"wrapperClass": "wrapperClass",
}

// Render creates the node of a leaf widget under items.
func Render(src *source.Source, items *target.Target) *target.Target {
	node := CreateNode(src, items)
	ann, ok := widgetAnnotation(src)
	if ok {
		node.Attribute(api.PropResourceType, ResourceType(src))
	}
	node.Attribute(api.PropName, StoredName(src))

	if df, ok := src.Annotation(api.DialogField); ok {
		for _, key := range df.Keys() {
			if prop, known := dialogFieldProperties[key]; known {
				node.Attribute(prop, df.Values[key])
			}
		}
	}
	if ok {
		writeProperties(node, ann)
	}
	return node
}

// CreateNode creates an empty, uniquely named node for src under items.
func CreateNode(src *source.Source, items *target.Target) *target.Target {
	return items.CreateUniqueTarget(NodeName(src))
}

// ResourceType returns the resource type of src's widget annotation, or
// the empty string for a member without one.
func ResourceType(src *source.Source) string {
	for _, w := range api.WidgetResourceTypes {
		if src.Has(w.Annotation) {
			return w.ResourceType
		}
	}
	return ""
}

// NodeName is the name of src's node: the DialogField name if given,
// otherwise the member name with any getter prefix removed.
func NodeName(src *source.Source) string {
	return target.ValidName(PropertyName(src), "field")
}

// StoredName is the value of the node's name property: the DialogField
// name as written, made relative, or "./" plus PropertyName.
func StoredName(src *source.Source) string {
	if df, ok := src.Annotation(api.DialogField); ok {
		if name := strings.TrimSpace(df.String("name")); name != "" {
			if !strings.HasPrefix(name, "./") && !strings.HasPrefix(name, "/") {
				name = "./" + name
			}
			return name
		}
	}
	return "./" + PropertyName(src)
}

// PropertyName is the last segment of the property the widget stores.
func PropertyName(src *source.Source) string {
	if df, ok := src.Annotation(api.DialogField); ok {
		if name := strings.TrimSpace(df.String("name")); name != "" {
			name = strings.TrimPrefix(name, "./")
			if i := strings.LastIndex(name, "/"); i >= 0 {
				name = name[i+1:]
			}
			if name != "" {
				return name
			}
		}
	}
	name := src.Name()
	if src.Kind() == source.KindMethod {
		for _, prefix := range []string{"get", "is"} {
			rest := strings.TrimPrefix(name, prefix)
			if rest != name && rest != "" && strings.ToUpper(rest[:1]) == rest[:1] {
				return strings.ToLower(rest[:1]) + rest[1:]
			}
		}
	}
	return name
}

func widgetAnnotation(src *source.Source) (java.AnnotationModel, bool) {
	for _, w := range api.WidgetResourceTypes {
		if a, ok := src.Annotation(w.Annotation); ok {
			return a, true
		}
	}
	return java.AnnotationModel{}, false
}

func writeProperties(node *target.Target, ann java.AnnotationModel) {
	for _, key := range ann.Keys() {
		value := ann.Values[key]
		switch value.(type) {
		case map[string]any, []map[string]any:
			continue
		}
		node.Attribute(key, value)
	}
}
