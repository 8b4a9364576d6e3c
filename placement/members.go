package placement

import (
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/source"
)

// State is the checkout state of a member. Transitions only go forward:
// Available to SoftCheckedOut to CheckedOut, or Available to CheckedOut.
type State int

const (
	Available State = iota
	// SoftCheckedOut marks a member claimed by an enclosing section that a
	// nested container may still take if the member's directive names it.
	SoftCheckedOut
	CheckedOut
)

func (s State) String() string {
	switch s {
	case Available:
		return "available"
	case SoftCheckedOut:
		return "soft-checked-out"
	case CheckedOut:
		return "checked-out"
	}
	return "unknown"
}

type memberEntry struct {
	member   *source.Source
	state    State
	borrowed bool
}

// MembersRegistry tracks the checkout state of the members of one
// placement pass. A registry linked to an upstream registry forwards every
// checkout to it. The registries of nested containers run on the same call
// stack as the enclosing pass, so a checkout is visible upstream as soon as
// the call returns; nothing else orders these writes.
type MembersRegistry struct {
	upstream *MembersRegistry
	entries  []*memberEntry
	byMember map[*source.Source]*memberEntry
}

// NewMembersRegistry builds an independent registry with every member
// available.
func NewMembersRegistry(members []*source.Source) *MembersRegistry {
	r := &MembersRegistry{byMember: make(map[*source.Source]*memberEntry)}
	for _, m := range members {
		r.add(m, Available, false)
	}
	return r
}

// NewLinkedMembersRegistry builds a registry for a nested container. It
// holds the container's own members plus, borrowed, every member the
// upstream registry still has available or soft-checked-out. Checkouts are
// propagated upstream.
func NewLinkedMembersRegistry(upstream *MembersRegistry, members []*source.Source) *MembersRegistry {
	r := NewMembersRegistry(members)
	r.upstream = upstream
	if upstream != nil {
		for _, e := range upstream.entries {
			if e.state != CheckedOut {
				r.add(e.member, e.state, true)
			}
		}
	}
	return r
}

func (r *MembersRegistry) add(m *source.Source, state State, borrowed bool) {
	if m == nil {
		return
	}
	if _, exists := r.byMember[m]; exists {
		return
	}
	e := &memberEntry{member: m, state: state, borrowed: borrowed}
	r.entries = append(r.entries, e)
	r.byMember[m] = e
}

func (r *MembersRegistry) Upstream() *MembersRegistry { return r.upstream }

// All returns every tracked member in registration order.
func (r *MembersRegistry) All() []*source.Source {
	return r.filter(func(*memberEntry) bool { return true })
}

// GetAvailable returns the members that nothing has claimed.
func (r *MembersRegistry) GetAvailable() []*source.Source {
	return r.filter(func(e *memberEntry) bool { return e.state == Available })
}

// GetAllAvailable returns the available and the soft-checked-out members.
func (r *MembersRegistry) GetAllAvailable() []*source.Source {
	return r.filter(func(e *memberEntry) bool { return e.state != CheckedOut })
}

// GetOwnAvailable returns the available members that were not borrowed
// from the upstream registry.
func (r *MembersRegistry) GetOwnAvailable() []*source.Source {
	return r.filter(func(e *memberEntry) bool { return e.state == Available && !e.borrowed })
}

func (r *MembersRegistry) filter(keep func(*memberEntry) bool) []*source.Source {
	var result []*source.Source
	for _, e := range r.entries {
		if keep(e) {
			result = append(result, e.member)
		}
	}
	return result
}

func (r *MembersRegistry) Contains(m *source.Source) bool {
	_, ok := r.byMember[m]
	return ok
}

// State returns the member's state. Unknown members report CheckedOut so
// that they are never offered for placement.
func (r *MembersRegistry) State(m *source.Source) State {
	if e, ok := r.byMember[m]; ok {
		return e.state
	}
	return CheckedOut
}

// IsBorrowed reports whether m was taken over from the upstream registry.
func (r *MembersRegistry) IsBorrowed(m *source.Source) bool {
	if e, ok := r.byMember[m]; ok {
		return e.borrowed
	}
	return false
}

// CheckOut marks m as placed here and upstream. Unknown members are
// ignored.
func (r *MembersRegistry) CheckOut(m *source.Source) {
	if e, ok := r.byMember[m]; ok {
		e.state = CheckedOut
	}
	if r.upstream != nil {
		r.upstream.CheckOut(m)
	}
}

// SoftCheckOut marks an available m as claimed, here and upstream.
// Members already checked out stay checked out.
func (r *MembersRegistry) SoftCheckOut(m *source.Source) {
	if e, ok := r.byMember[m]; ok && e.state == Available {
		e.state = SoftCheckedOut
	}
	if r.upstream != nil {
		r.upstream.SoftCheckOut(m)
	}
}
