// Package source turns class descriptors into member-sources: handles to
// the fields, methods and nested classes that carry dialog metadata.
package source

import (
	"fmt"
	"strings"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
)

type Kind string

const (
	KindField  Kind = "field"
	KindMethod Kind = "method"
	KindClass  Kind = "class"
)

// Source is a handle to one annotated class member. Sources are compared
// by pointer: the same *Source is shared between every registry that
// tracks it.
type Source struct {
	kind           Kind
	name           string
	valueType      java.TypeModel
	annotations    []java.AnnotationModel
	declaringClass *java.ClassModel
	reportingClass *java.ClassModel
}

func FromField(declaring *java.ClassModel, f java.FieldModel) *Source {
	return &Source{
		kind:           KindField,
		name:           f.Name,
		valueType:      f.Type,
		annotations:    f.Annotations,
		declaringClass: declaring,
		reportingClass: declaring,
	}
}

func FromMethod(declaring *java.ClassModel, m java.MethodModel) *Source {
	return &Source{
		kind:           KindMethod,
		name:           m.Name,
		valueType:      m.ReturnType,
		annotations:    m.Annotations,
		declaringClass: declaring,
		reportingClass: declaring,
	}
}

func FromClass(c *java.ClassModel) *Source {
	return &Source{
		kind:           KindClass,
		name:           c.SimpleName,
		valueType:      java.TypeModel{Name: c.Name},
		annotations:    c.Annotations,
		declaringClass: c,
		reportingClass: c,
	}
}

func (s *Source) Kind() Kind                       { return s.kind }
func (s *Source) Name() string                     { return s.name }
func (s *Source) ValueType() java.TypeModel        { return s.valueType }
func (s *Source) DeclaringClass() *java.ClassModel { return s.declaringClass }

// ReportingClass is the class whose member list produced this source,
// which is the subclass being rendered when the member is inherited.
func (s *Source) ReportingClass() *java.ClassModel { return s.reportingClass }

func (s *Source) Annotations() []java.AnnotationModel { return s.annotations }

func (s *Source) Annotation(typ string) (java.AnnotationModel, bool) {
	for _, a := range s.annotations {
		if a.Is(typ) {
			return a, true
		}
	}
	return java.AnnotationModel{}, false
}

func (s *Source) Has(typ string) bool {
	_, ok := s.Annotation(typ)
	return ok
}

// Place returns the placement directive: the title, or slash-separated
// title path, of the section the member asks to be rendered in.
func (s *Source) Place() string {
	if a, ok := s.Annotation(api.Place); ok {
		return strings.TrimSpace(a.String("value"))
	}
	if a, ok := s.Annotation(api.PlaceOn); ok {
		return strings.TrimSpace(a.String("value"))
	}
	return ""
}

// Rank returns the DialogField ranking. Unranked members rank 0.
func (s *Source) Rank() int {
	if a, ok := s.Annotation(api.DialogField); ok {
		if r, ok := a.Int("ranking"); ok {
			return r
		}
	}
	return 0
}

// ContainerAnnotation returns the Tabs, Accordion or FixedColumns
// annotation that makes this member an in-dialog container.
func (s *Source) ContainerAnnotation() (java.AnnotationModel, bool) {
	for _, typ := range api.ContainerAnnotations {
		if a, ok := s.Annotation(typ); ok {
			return a, true
		}
	}
	return java.AnnotationModel{}, false
}

func (s *Source) IsContainer() bool {
	_, ok := s.ContainerAnnotation()
	return ok
}

// IsWidget reports whether the member renders as a dialog widget.
func (s *Source) IsWidget() bool {
	if s.Has(api.DialogField) || s.IsContainer() {
		return true
	}
	for _, w := range api.WidgetResourceTypes {
		if s.Has(w.Annotation) {
			return true
		}
	}
	return false
}

// IgnoredSections returns the section titles listed in the member's own
// Ignore annotation.
func (s *Source) IgnoredSections() []string {
	if a, ok := s.Annotation(api.Ignore); ok {
		return a.Strings("sections")
	}
	return nil
}

func (s *Source) String() string {
	if s.kind == KindClass {
		return s.declaringClass.Name
	}
	owner := ""
	if s.declaringClass != nil {
		owner = s.declaringClass.Name
	}
	if s.kind == KindMethod {
		return fmt.Sprintf("%s#%s()", owner, s.name)
	}
	return fmt.Sprintf("%s#%s", owner, s.name)
}
