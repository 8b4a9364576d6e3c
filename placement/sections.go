package placement

import (
	"strings"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/source"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("dialoggen.placement")

// SectionsRegistry is the ordered list of sections one placement pass
// fills, tombstones of ignored sections included.
type SectionsRegistry struct {
	kind     SectionKind
	sections []*Section
}

// NewSectionsRegistry wraps an already ordered section list.
func NewSectionsRegistry(kind SectionKind, sections ...*Section) *SectionsRegistry {
	return &SectionsRegistry{kind: kind, sections: sections}
}

// DefaultSectionsRegistry holds the single implicit section used when a
// class has members to place but declares no section of the kind.
func DefaultSectionsRegistry(kind SectionKind, isTopLevel bool) *SectionsRegistry {
	return NewSectionsRegistry(kind, newSection(kind, api.DefaultSectionTitle, isTopLevel))
}

func (r *SectionsRegistry) Kind() SectionKind { return r.kind }

// GetAvailable returns the sections in placement order, tombstones
// included.
func (r *SectionsRegistry) GetAvailable() []*Section {
	return append([]*Section(nil), r.sections...)
}

// IsEmpty reports whether the registry has no sections at all.
func (r *SectionsRegistry) IsEmpty() bool {
	return len(r.sections) == 0
}

// Titles returns the full titles in placement order.
func (r *SectionsRegistry) Titles() []string {
	titles := make([]string, len(r.sections))
	for i, s := range r.sections {
		titles[i] = s.FullTitle()
	}
	return titles
}

// DialogSections collects the sections of the given kind declared for a
// dialog by c and its ancestors. Each class contributes, in this order,
// its nested classes annotated with the section annotation (last declared
// first) and the sections listed in its class-level container annotation
// (plus, for tabs, the legacy Dialog.tabs array). The contributions of
// each class are then merged with those inherited from its superclasses.
func DialogSections(idx *java.Index, c *java.ClassModel, kind SectionKind) *SectionsRegistry {
	var result []*Section
	for _, cls := range idx.Ancestors(c) {
		current := classSections(idx, cls, kind)
		result = mergeSections(result, current)
	}
	r := &SectionsRegistry{kind: kind, sections: result}

	var ignored []string
	if a, ok := c.Annotation(api.Ignore); ok {
		ignored = a.Strings("sections")
	}
	r.applyIgnored(ignored, true)
	return r
}

func classSections(idx *java.Index, cls *java.ClassModel, kind SectionKind) []*Section {
	var current []*Section

	nested := idx.NestedClasses(cls)
	for i := len(nested) - 1; i >= 0; i-- {
		ann, ok := nested[i].Annotation(kind.Annotation())
		if !ok {
			continue
		}
		sec := From(ann, true)
		if sec == nil {
			continue
		}
		sec.AddSources(source.Members(idx, nested[i])...)
		current = appendOrMerge(current, sec)
	}

	var declared []java.AnnotationModel
	if a, ok := cls.Annotation(kind.ContainerAnnotation()); ok {
		declared = append(declared, a.Annotations("value", kind.Annotation())...)
	}
	if kind == KindTab {
		if a, ok := cls.Annotation(api.Dialog); ok {
			declared = append(declared, a.Annotations("tabs", api.Tab)...)
		}
	}
	for _, ann := range declared {
		if sec := From(ann, true); sec != nil {
			current = appendOrMerge(current, sec)
		}
	}
	return current
}

// ContainerSections collects the sections of an in-dialog container: the
// sections listed in src's Tabs, Accordion or FixedColumns annotation. The
// sections are addressed by src's placement directive or, without one, by
// the titles of the sections enclosing node in the rendered tree.
func ContainerSections(src *source.Source, node *target.Target) *SectionsRegistry {
	ann, ok := src.ContainerAnnotation()
	if !ok {
		return &SectionsRegistry{}
	}
	kind, _ := KindOfContainer(ann.Type)

	prefix := src.Place()
	if prefix == "" {
		prefix = TitlePath(node)
	}

	var current []*Section
	for _, nested := range ann.Annotations("value", kind.Annotation()) {
		sec := From(nested, false)
		if sec == nil {
			continue
		}
		sec.SetTitlePrefix(prefix)
		current = appendOrMerge(current, sec)
	}
	r := &SectionsRegistry{kind: kind, sections: current}

	// The member's own ignore list is relative to the container; the
	// reporting class's list addresses sections by full title and only
	// drops what it matches here.
	r.applyIgnored(qualify(strings.Trim(prefix, "/"), src.IgnoredSections()), true)
	if rc := src.ReportingClass(); rc != nil {
		if a, ok := rc.Annotation(api.Ignore); ok {
			r.applyIgnored(a.Strings("sections"), false)
		}
	}
	return r
}

// IsAvailableFor reports whether src declares an in-dialog container.
func IsAvailableFor(src *source.Source) bool {
	if src == nil || src.Kind() == source.KindClass {
		return false
	}
	return src.IsContainer()
}

// TitlePath returns the slash-joined titles of the tab and accordion
// panel nodes enclosing node, outermost first.
func TitlePath(node *target.Target) string {
	var titles []string
	for cur := node.FindParent(isSectionNode); cur != nil; cur = cur.FindParent(isSectionNode) {
		titles = append(titles, cur.Attr(api.PropTitle))
	}
	for i, j := 0, len(titles)-1; i < j; i, j = i+1, j-1 {
		titles[i], titles[j] = titles[j], titles[i]
	}
	return strings.Join(titles, "/")
}

func isSectionNode(t *target.Target) bool {
	if !t.HasAttr(api.PropTitle) || t.Attr(api.PropResourceType) != api.ResourceTypeContainer {
		return false
	}
	items := t.Parent()
	if items == nil || items.Parent() == nil {
		return false
	}
	switch items.Parent().Attr(api.PropResourceType) {
	case api.ResourceTypeTabs, api.ResourceTypeAccordion:
		return true
	}
	return false
}

// applyIgnored removes, for every ignored title, the first section whose
// full title matches and appends a tombstone in its stead, so that a
// tombstone never becomes the default acceptor. Titles matching nothing
// get a tombstone too when keepUnmatched is set.
func (r *SectionsRegistry) applyIgnored(titles []string, keepUnmatched bool) {
	seen := make(map[string]bool)
	for _, title := range titles {
		title = strings.Trim(strings.TrimSpace(title), "/")
		key := strings.ToLower(title)
		if title == "" || seen[key] {
			continue
		}
		seen[key] = true

		tombstone := Ignored(title)
		tombstone.kind = r.kind
		matched := false
		for i, s := range r.sections {
			if s.IsIgnored() || !s.IsMatch(title) {
				continue
			}
			tombstone.topLevel = s.topLevel
			tombstone.title = s.title
			tombstone.titlePrefix = s.titlePrefix
			tombstone.sources = s.sources
			r.sections = append(r.sections[:i], r.sections[i+1:]...)
			matched = true
			break
		}
		if !matched && !keepUnmatched {
			continue
		}
		r.sections = append(r.sections, tombstone)
		log.Debugf("section %q is ignored", tombstone.FullTitle())
	}
}

// qualify prefixes the titles that are not already addressed from prefix.
func qualify(prefix string, titles []string) []string {
	if prefix == "" {
		return titles
	}
	head := strings.ToLower(prefix) + "/"
	result := make([]string, 0, len(titles))
	for _, title := range titles {
		title = strings.Trim(strings.TrimSpace(title), "/")
		if title != "" && !strings.HasPrefix(strings.ToLower(title), head) {
			title = prefix + "/" + title
		}
		result = append(result, title)
	}
	return result
}

// appendOrMerge adds s to list, merging it into an existing section with
// the same full title.
func appendOrMerge(list []*Section, s *Section) []*Section {
	for _, existing := range list {
		if sameTitle(existing, s) {
			existing.Merge(s)
			return list
		}
	}
	return append(list, s)
}

// mergeSections combines the sections inherited from superclasses with
// the sections of the current class.
//
// If any title appears in both lists, the current class's order wins: its
// sections come first, each merged with the inherited section of the same
// title, followed by the remaining inherited sections in their order.
// Otherwise the inherited sections come first and the current ones are
// appended.
func mergeSections(inherited, current []*Section) []*Section {
	inheritedIndex := make(map[string]int, len(inherited))
	for i, s := range inherited {
		inheritedIndex[titleKey(s)] = i
	}
	collisions := make(map[int]bool)
	for _, s := range current {
		if i, ok := inheritedIndex[titleKey(s)]; ok {
			collisions[i] = true
		}
	}

	result := make([]*Section, 0, len(inherited)+len(current))
	if len(collisions) == 0 {
		result = append(result, inherited...)
		return append(result, current...)
	}

	for _, s := range current {
		if i, ok := inheritedIndex[titleKey(s)]; ok {
			log.Debugf("merging inherited section %q", s.FullTitle())
			s.Merge(inherited[i])
		}
		result = append(result, s)
	}
	for i, s := range inherited {
		if !collisions[i] {
			result = append(result, s)
		}
	}
	return result
}

func sameTitle(a, b *Section) bool {
	return titleKey(a) == titleKey(b)
}

func titleKey(s *Section) string {
	return strings.ToLower(s.FullTitle())
}
