// Package placement assembles the ordered sections of a dialog or an
// in-dialog container and assigns every placeable member to exactly one
// of them.
package placement

import (
	"strings"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/source"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
)

// SectionKind selects how a family of sections is declared and rendered.
type SectionKind int

const (
	KindTab SectionKind = iota
	KindAccordionPanel
	KindColumn
)

type kindInfo struct {
	name                  string
	annotation            string
	containerAnnotation   string
	nodeName              string
	containerNodeName     string
	containerResourceType string
}

var kinds = map[SectionKind]kindInfo{
	KindTab: {
		name:                  "tab",
		annotation:            api.Tab,
		containerAnnotation:   api.Tabs,
		nodeName:              api.NodeTab,
		containerNodeName:     api.NodeTabs,
		containerResourceType: api.ResourceTypeTabs,
	},
	KindAccordionPanel: {
		name:                  "accordion panel",
		annotation:            api.AccordionPanel,
		containerAnnotation:   api.Accordion,
		nodeName:              api.NodePanel,
		containerNodeName:     api.NodeAccordion,
		containerResourceType: api.ResourceTypeAccordion,
	},
	KindColumn: {
		name:                  "column",
		annotation:            api.Column,
		containerAnnotation:   api.FixedColumns,
		nodeName:              api.NodeColumn,
		containerNodeName:     "",
		containerResourceType: api.ResourceTypeFixedColumns,
	},
}

func (k SectionKind) String() string { return kinds[k].name }

// Annotation is the section annotation, e.g. Tab.
func (k SectionKind) Annotation() string { return kinds[k].annotation }

// ContainerAnnotation is the annotation listing sections, e.g. Tabs.
func (k SectionKind) ContainerAnnotation() string { return kinds[k].containerAnnotation }

// NodeName is the fallback name of a rendered section node.
func (k SectionKind) NodeName() string { return kinds[k].nodeName }

// ContainerNodeName is the name of the wrapper node holding the sections
// at dialog level. Columns have none.
func (k SectionKind) ContainerNodeName() string { return kinds[k].containerNodeName }

func (k SectionKind) ContainerResourceType() string { return kinds[k].containerResourceType }

// KindOf resolves a section annotation type (Tab, AccordionPanel, Column).
func KindOf(annotationType string) (SectionKind, bool) {
	candidate := java.AnnotationModel{Type: annotationType}
	for k, info := range kinds {
		if candidate.Is(info.annotation) {
			return k, true
		}
	}
	return 0, false
}

// KindOfContainer resolves a container annotation type (Tabs, Accordion,
// FixedColumns).
func KindOfContainer(annotationType string) (SectionKind, bool) {
	candidate := java.AnnotationModel{Type: annotationType}
	for k, info := range kinds {
		if candidate.Is(info.containerAnnotation) {
			return k, true
		}
	}
	return 0, false
}

// Section is one named container slot. It is read-only after construction
// except for Merge and SetTitlePrefix.
type Section struct {
	kind        SectionKind
	title       string
	titlePrefix string
	sources     []*source.Source
	properties  java.AnnotationModel
	ignored     bool
	topLevel    bool
}

// From builds a section from a Tab, AccordionPanel or Column annotation.
// It returns nil for any other annotation.
func From(ann java.AnnotationModel, isTopLevel bool) *Section {
	kind, ok := KindOf(ann.Type)
	if !ok {
		return nil
	}
	s := &Section{
		kind:       kind,
		title:      strings.TrimSpace(ann.String("title")),
		properties: ann,
		topLevel:   isTopLevel,
	}
	return s
}

// Ignored builds a tombstone standing in for an ignored section.
func Ignored(title string) *Section {
	return &Section{title: title, ignored: true, topLevel: true}
}

// newSection builds a section with the given title and no properties.
func newSection(kind SectionKind, title string, isTopLevel bool) *Section {
	return &Section{
		kind:       kind,
		title:      title,
		properties: java.AnnotationModel{Type: kind.Annotation()},
		topLevel:   isTopLevel,
	}
}

func (s *Section) Kind() SectionKind                { return s.kind }
func (s *Section) Title() string                    { return s.title }
func (s *Section) TitlePrefix() string              { return s.titlePrefix }
func (s *Section) Sources() []*source.Source        { return s.sources }
func (s *Section) Properties() java.AnnotationModel { return s.properties }
func (s *Section) IsIgnored() bool                  { return s.ignored }

// FullTitle is the section's address: the title prefixed with the titles
// of the enclosing sections, e.g. "Main/Advanced".
func (s *Section) FullTitle() string {
	if s.titlePrefix == "" {
		return s.title
	}
	return s.titlePrefix + "/" + s.title
}

// SetTitlePrefix records the address of the enclosing section for a
// section declared in an in-dialog container. Dialog-level sections have
// no prefix.
func (s *Section) SetTitlePrefix(prefix string) {
	if s.topLevel {
		return
	}
	s.titlePrefix = strings.Trim(prefix, "/")
}

// IsMatch compares a title, case-insensitively, with the full title.
func (s *Section) IsMatch(candidate string) bool {
	candidate = strings.Trim(strings.TrimSpace(candidate), "/")
	return strings.EqualFold(candidate, s.FullTitle())
}

// AddSources binds member-sources to the section statically.
func (s *Section) AddSources(sources ...*source.Source) {
	s.sources = append(s.sources, sources...)
}

// Merge appends other's bound sources to s and returns s. Sources are not
// deduplicated: merging the same section twice binds its sources twice.
func (s *Section) Merge(other *Section) *Section {
	if other == nil || other == s {
		return s
	}
	s.sources = append(s.sources, other.sources...)
	return s
}

// Render creates the section node under container and returns the node
// that receives the section's members.
func (s *Section) Render(container *target.Target) *target.Target {
	var node *target.Target
	switch s.kind {
	case KindColumn:
		node = container.CreateUniqueTarget(api.NodeColumn)
	default:
		node = container.CreateUniqueTarget(target.ValidName(s.title, s.kind.NodeName()))
		node.Attribute(api.PropTitle, s.title)
	}
	node.Attribute(api.PropResourceType, api.ResourceTypeContainer)

	var parentConfig *target.Target
	for _, key := range s.properties.Keys() {
		if key == "title" {
			continue
		}
		value := s.properties.Values[key]
		if _, nested := value.(map[string]any); nested {
			continue
		}
		if s.kind == KindAccordionPanel && (key == "active" || key == "disabled") {
			if parentConfig == nil {
				parentConfig = node.CreateTarget(api.NodeParentConfig)
			}
			parentConfig.Attribute(key, value)
			continue
		}
		node.Attribute(key, value)
	}
	return node.CreateTarget(api.NodeItems)
}
