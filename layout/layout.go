// Package layout builds the container skeletons of dialogs and in-dialog
// containers and runs the placement pass for each of them.
package layout

import (
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/diag"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/placement"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/source"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/widget"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("dialoggen.layout")

// Pass carries the state shared by the handlers of one rendering pass.
// Members is the registry of the placement currently running; nested
// container handlers link their own registries to it.
type Pass struct {
	Index   *java.Index
	Diag    diag.Handler
	Members *placement.MembersRegistry

	// expanding holds the classes whose members are being placed, from
	// the dialog class down to the current container.
	expanding map[string]bool
}

func NewPass(idx *java.Index, handler diag.Handler) *Pass {
	if handler == nil {
		handler = diag.NewPolicy(nil)
	}
	return &Pass{Index: idx, Diag: handler, expanding: make(map[string]bool)}
}

func (p *Pass) nested(members *placement.MembersRegistry) *Pass {
	return &Pass{Index: p.Index, Diag: p.Diag, Members: members, expanding: p.expanding}
}

// enter marks the class as being expanded. It returns false if it
// already is.
func (p *Pass) enter(name string) bool {
	if p.expanding == nil {
		p.expanding = make(map[string]bool)
	}
	if p.expanding[name] {
		return false
	}
	p.expanding[name] = true
	return true
}

func (p *Pass) leave(name string) {
	delete(p.expanding, name)
}

// Render implements placement.Renderer: container widgets are handed to
// the widget container handler, everything else to the widget renderer.
// A container whose value type is already being expanded is reported and
// left out.
func (p *Pass) Render(member *source.Source, items *target.Target) *target.Target {
	if placement.IsAvailableFor(member) {
		vt := p.Index.Lookup(member.ValueType().Name)
		if vt != nil && p.expanding[vt.Name] {
			p.Diag.Handle(&diag.InvalidContainerError{
				Kind:      diag.KindRecursiveContainer,
				Class:     ownerName(member),
				Member:    member.Name(),
				Container: vt.Name,
			})
			return nil
		}
		node := widget.CreateNode(member, items)
		HandleWidgetContainer(p, member, node)
		return node
	}
	return widget.Render(member, items)
}

// run is the part shared by all handlers: it substitutes a default
// section when none was declared, places the members, and, if asked,
// reports the members left unplaced.
type run struct {
	owner         string
	container     *target.Target
	sections      *placement.SectionsRegistry
	members       *placement.MembersRegistry
	topLevel      bool
	reportOrphans bool
}

func (p *Pass) execute(r run) {
	if r.sections.IsEmpty() && len(r.members.GetOwnAvailable()) > 0 {
		p.Diag.Handle(&diag.InvalidContainerError{
			Kind:      diag.KindMissingContainer,
			Class:     r.owner,
			Container: r.sections.Kind().String(),
		})
		r.sections = placement.DefaultSectionsRegistry(r.sections.Kind(), r.topLevel)
	}

	helper := &placement.Helper{
		Container: r.container,
		Sections:  r.sections,
		Members:   r.members,
		Renderer:  p.nested(r.members),
	}
	helper.DoPlacement()

	if !r.reportOrphans {
		return
	}
	for _, m := range r.members.GetOwnAvailable() {
		p.Diag.Handle(&diag.InvalidContainerError{
			Kind:      diag.KindOrphanedMember,
			Class:     ownerName(m),
			Member:    m.Name(),
			Directive: m.Place(),
			Container: r.sections.Kind().String(),
		})
	}
}

// HandleFixedColumns renders the fixed-columns layout of a dialog. For
// compatibility with earlier releases, members that match no column are
// left out silently.
func HandleFixedColumns(p *Pass, c *java.ClassModel, root *target.Target) {
	content := root.GetOrCreateTarget(api.NodeContent)
	content.Attribute(api.PropResourceType, api.ResourceTypeFixedColumns)
	items := content.GetOrCreateTarget(api.NodeItems)

	sections := placement.DialogSections(p.Index, c, placement.KindColumn)
	members := placement.NewMembersRegistry(source.Members(p.Index, c))
	p.Members = members
	if p.enter(c.Name) {
		defer p.leave(c.Name)
	}

	log.Debugf("%s: fixed columns %v", c.Name, sections.Titles())
	p.execute(run{
		owner:     c.Name,
		container: items,
		sections:  sections,
		members:   members,
		topLevel:  true,
	})
}

// HandleComplex renders a tabbed or accordion dialog layout and reports
// every member whose directive matched no section.
func HandleComplex(p *Pass, c *java.ClassModel, root *target.Target, kind placement.SectionKind) {
	content := root.GetOrCreateTarget(api.NodeContent)
	content.Attribute(api.PropResourceType, api.ResourceTypeContainer)
	wrapper := content.GetOrCreateTarget(api.NodeItems).GetOrCreateTarget(kind.ContainerNodeName())
	wrapper.Attribute(api.PropResourceType, kind.ContainerResourceType())
	if kind == placement.KindTab {
		wrapper.Attribute(api.PropMaximized, true)
	}
	items := wrapper.GetOrCreateTarget(api.NodeItems)

	sections := placement.DialogSections(p.Index, c, kind)
	members := placement.NewMembersRegistry(source.Members(p.Index, c))
	p.Members = members
	if p.enter(c.Name) {
		defer p.leave(c.Name)
	}

	log.Debugf("%s: %s sections %v", c.Name, kind, sections.Titles())
	p.execute(run{
		owner:         c.Name,
		container:     items,
		sections:      sections,
		members:       members,
		topLevel:      true,
		reportOrphans: true,
	})
}

// HandleWidgetContainer renders a member annotated with Tabs, Accordion or
// FixedColumns. Its own members come from the member's value type; the
// members still unplaced in the enclosing pass are borrowed so that a
// directive naming one of this container's sections by full title lands
// here.
func HandleWidgetContainer(p *Pass, member *source.Source, node *target.Target) {
	sections := placement.ContainerSections(member, node)
	kind := sections.Kind()
	node.Attribute(api.PropResourceType, kind.ContainerResourceType())
	items := node.GetOrCreateTarget(api.NodeItems)

	var own []*source.Source
	if vt := p.Index.Lookup(member.ValueType().Name); vt != nil {
		own = source.Members(p.Index, vt)
		if p.enter(vt.Name) {
			defer p.leave(vt.Name)
		}
	}
	members := placement.NewLinkedMembersRegistry(p.Members, own)

	log.Debugf("%s: nested %s sections %v", member, kind, sections.Titles())
	p.execute(run{
		owner:     member.String(),
		container: items,
		sections:  sections,
		members:   members,
	})
}

func ownerName(m *source.Source) string {
	if rc := m.ReportingClass(); rc != nil {
		return rc.Name
	}
	return m.String()
}
