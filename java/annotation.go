package java

import (
	"fmt"
	"sort"
	"strings"
)

// AnnotationModel is an annotation instance reduced to a property bag.
// Type holds the fully qualified or the simple annotation name; Values
// holds element values as decoded from the descriptor (strings, numbers,
// booleans, lists and nested maps for nested annotations).
type AnnotationModel struct {
	Type   string         `json:"type" yaml:"type"`
	Values map[string]any `json:"values,omitempty" yaml:"values,omitempty"`
}

// Is reports whether the annotation is of the given type. Either side may
// be fully qualified; a simple name matches any package.
func (a AnnotationModel) Is(typ string) bool {
	if a.Type == typ {
		return true
	}
	return simpleTypeName(a.Type) == simpleTypeName(typ)
}

func (a AnnotationModel) SimpleType() string {
	return simpleTypeName(a.Type)
}

func (a AnnotationModel) Has(key string) bool {
	_, ok := a.Values[key]
	return ok
}

func (a AnnotationModel) String(key string) string {
	v, ok := a.Values[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if list, ok := v.([]any); ok && len(list) == 1 {
		return FormatValue(list[0])
	}
	return FormatValue(v)
}

// Strings returns a string list element. Java allows a single value where
// an array is expected, so a scalar yields a one-element list.
func (a AnnotationModel) Strings(key string) []string {
	v, ok := a.Values[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case []any:
		result := make([]string, 0, len(t))
		for _, item := range t {
			result = append(result, FormatValue(item))
		}
		return result
	case []string:
		return append([]string(nil), t...)
	default:
		return []string{FormatValue(t)}
	}
}

func (a AnnotationModel) Int(key string) (int, bool) {
	v, ok := a.Values[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint16:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func (a AnnotationModel) Bool(key string) bool {
	b, _ := a.Values[key].(bool)
	return b
}

// Annotations returns nested annotation values stored under key. Nested
// values may be written as {type, values} pairs or as bare value maps, in
// which case they are given the fallback type.
func (a AnnotationModel) Annotations(key, fallbackType string) []AnnotationModel {
	v, ok := a.Values[key]
	if !ok || v == nil {
		return nil
	}
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []AnnotationModel:
		return append([]AnnotationModel(nil), t...)
	default:
		items = []any{t}
	}
	result := make([]AnnotationModel, 0, len(items))
	for _, item := range items {
		if nested, ok := nestedAnnotation(item, fallbackType); ok {
			result = append(result, nested)
		}
	}
	return result
}

// Keys returns the element names in sorted order.
func (a AnnotationModel) Keys() []string {
	keys := make([]string, 0, len(a.Values))
	for k := range a.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func nestedAnnotation(v any, fallbackType string) (AnnotationModel, bool) {
	switch t := v.(type) {
	case AnnotationModel:
		return t, true
	case map[string]any:
		typ, _ := t["type"].(string)
		if values, ok := t["values"].(map[string]any); ok && typ != "" {
			return AnnotationModel{Type: typ, Values: values}, true
		}
		return AnnotationModel{Type: fallbackType, Values: t}, true
	}
	return AnnotationModel{}, false
}

// FormatValue renders an element value the way it reads in Java source.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = FormatValue(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}

func simpleTypeName(name string) string {
	if i := strings.LastIndexAny(name, ".$"); i >= 0 {
		return name[i+1:]
	}
	return name
}
