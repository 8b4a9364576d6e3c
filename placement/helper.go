package placement

import (
	"strings"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/source"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
)

// Renderer renders one member under a section's items node and returns
// the member's node, or nil if nothing was rendered.
type Renderer interface {
	Render(member *source.Source, items *target.Target) *target.Target
}

// Helper places the members of a registry into the sections of a
// registry, rendering each section under Container.
type Helper struct {
	Container *target.Target
	Sections  *SectionsRegistry
	Members   *MembersRegistry
	Renderer  Renderer
}

// DoPlacement walks the sections in order. Each section receives its
// statically bound sources plus the available members whose directive
// names it; the first section also receives every member without a
// directive. Placed members are checked out. Members whose directive
// names no section stay available for the caller to report.
func (h *Helper) DoPlacement() {
	if h.Sections == nil || h.Members == nil {
		return
	}
	for i, sec := range h.Sections.GetAvailable() {
		h.place(sec, i == 0)
	}
}

func (h *Helper) place(sec *Section, isDefault bool) {
	bound := sec.Sources()
	candidates := h.Members.GetAllAvailable()

	var selected []*source.Source
	for _, m := range candidates {
		if h.matches(m, sec, isDefault) {
			selected = append(selected, m)
		}
	}

	members := make([]*source.Source, 0, len(bound)+len(selected))
	members = append(members, bound...)
	members = append(members, selected...)
	if len(bound) > 0 && len(selected) > 0 {
		source.SortByRank(members)
	}

	// Members addressed to a section nested inside this one are claimed
	// softly, so that a container rendered here can still take them.
	var claimed []*source.Source
	if sec.IsIgnored() || hasContainer(members) {
		for _, m := range candidates {
			if h.Members.State(m) == Available && !contains(selected, m) && h.addressesNested(m, sec) {
				claimed = append(claimed, m)
			}
		}
	}

	for _, m := range selected {
		h.Members.CheckOut(m)
	}
	for _, m := range claimed {
		h.Members.SoftCheckOut(m)
	}

	if sec.IsIgnored() {
		for _, m := range claimed {
			h.Members.CheckOut(m)
		}
		log.Debugf("skipping ignored section %q with %d member(s)", sec.FullTitle(), len(members)+len(claimed))
		return
	}

	items := sec.Render(h.Container)
	nodes := make(map[*source.Source]*target.Target, len(members))

	// Containers go first so their nested passes see the soft claims.
	for _, m := range members {
		if m.IsContainer() {
			nodes[m] = h.render(m, items)
		}
	}

	var fallback []*source.Source
	for _, m := range claimed {
		if h.Members.State(m) == SoftCheckedOut {
			h.Members.CheckOut(m)
			fallback = append(fallback, m)
		}
	}
	if len(fallback) > 0 {
		log.Debugf("%d member(s) fall back to section %q", len(fallback), sec.FullTitle())
		members = append(members, fallback...)
		source.SortByRank(members)
	}

	order := make([]*target.Target, 0, len(members))
	for _, m := range members {
		node, done := nodes[m]
		if !done {
			node = h.render(m, items)
			nodes[m] = node
		}
		if node != nil {
			order = append(order, node)
		}
	}
	items.Reorder(order)
}

func (h *Helper) render(m *source.Source, items *target.Target) *target.Target {
	if h.Renderer == nil {
		return nil
	}
	return h.Renderer.Render(m, items)
}

// matches reports whether m's directive names sec. Borrowed members must
// name the section by its full title; the registry's own members may also
// use the bare title. Only own, unclaimed members without a directive go
// to the default section.
func (h *Helper) matches(m *source.Source, sec *Section, isDefault bool) bool {
	directive := strings.Trim(m.Place(), "/")
	borrowed := h.Members.IsBorrowed(m)
	if directive == "" {
		return isDefault && !borrowed && h.Members.State(m) == Available
	}
	if strings.EqualFold(directive, sec.FullTitle()) {
		return true
	}
	return !borrowed && strings.EqualFold(directive, sec.Title())
}

// addressesNested reports whether m's directive is a path below sec.
func (h *Helper) addressesNested(m *source.Source, sec *Section) bool {
	directive := strings.ToLower(strings.Trim(m.Place(), "/"))
	if directive == "" {
		return false
	}
	if strings.HasPrefix(directive, strings.ToLower(sec.FullTitle())+"/") {
		return true
	}
	return !h.Members.IsBorrowed(m) && strings.HasPrefix(directive, strings.ToLower(sec.Title())+"/")
}

func hasContainer(members []*source.Source) bool {
	for _, m := range members {
		if m.IsContainer() {
			return true
		}
	}
	return false
}

func contains(list []*source.Source, m *source.Source) bool {
	for _, item := range list {
		if item == m {
			return true
		}
	}
	return false
}
