// Package diag carries the non-fatal diagnostics raised while dialogs are
// built and decides, by policy, whether they fail the build.
package diag

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("dialoggen.diag")

type Kind string

const (
	// KindMissingContainer: a class has members to place but no section.
	KindMissingContainer Kind = "missing-container"
	// KindOrphanedMember: a member's directive names no existing section.
	KindOrphanedMember Kind = "orphaned-member"
	// KindRecursiveContainer: a container member's value type is already
	// being expanded further up the dialog.
	KindRecursiveContainer Kind = "recursive-container"
)

// InvalidContainerError describes one container misconfiguration.
type InvalidContainerError struct {
	Kind      Kind
	Class     string
	Member    string
	Directive string
	Container string
}

func (e *InvalidContainerError) Error() string {
	switch e.Kind {
	case KindMissingContainer:
		return fmt.Sprintf("invalid container: %s declares members to place but no %s sections were found; using a default section", e.Class, e.Container)
	case KindOrphanedMember:
		return fmt.Sprintf("invalid container: member %q of %s is placed in %q, but no such %s section exists", e.Member, e.Class, e.Directive, e.Container)
	case KindRecursiveContainer:
		return fmt.Sprintf("invalid container: member %q of %s nests %s inside itself; skipping", e.Member, e.Class, e.Container)
	}
	return fmt.Sprintf("invalid container: %s", e.Class)
}

// Handler receives diagnostics. Implementations decide whether to log,
// collect or fail; the caller always continues.
type Handler interface {
	Handle(err error)
}

// Policy logs every diagnostic and remembers the ones its terminateOn
// rules select. Rules are "all", "none", a kind name, or "!kind" to
// exempt a kind from "all". The last matching rule wins.
type Policy struct {
	mu          sync.Mutex
	rules       []string
	terminating []error
	count       int
}

func NewPolicy(terminateOn []string) *Policy {
	rules := make([]string, 0, len(terminateOn))
	for _, r := range terminateOn {
		for _, part := range strings.Split(r, ",") {
			if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
				rules = append(rules, part)
			}
		}
	}
	return &Policy{rules: rules}
}

func (p *Policy) Handle(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count++
	if p.terminates(err) {
		log.Errorf("%s", err)
		p.terminating = append(p.terminating, err)
		return
	}
	log.Warningf("%s", err)
}

func (p *Policy) terminates(err error) bool {
	kind := kindOf(err)
	result := false
	for _, rule := range p.rules {
		switch {
		case rule == "all":
			result = true
		case rule == "none":
			result = false
		case strings.HasPrefix(rule, "!"):
			if Kind(rule[1:]) == kind {
				result = false
			}
		case Kind(rule) == kind:
			result = true
		}
	}
	return result
}

// Count returns the number of diagnostics handled so far.
func (p *Policy) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// Err returns the terminating diagnostics joined into one error, or nil.
func (p *Policy) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.terminating...)
}

// Recorder keeps every diagnostic in arrival order.
type Recorder struct {
	mu     sync.Mutex
	errors []error
}

func (r *Recorder) Handle(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, err)
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errors...)
}

// OfKind returns the recorded container errors of the given kind.
func (r *Recorder) OfKind(kind Kind) []*InvalidContainerError {
	var result []*InvalidContainerError
	for _, err := range r.Errors() {
		var ice *InvalidContainerError
		if errors.As(err, &ice) && ice.Kind == kind {
			result = append(result, ice)
		}
	}
	return result
}

// Tee forwards every diagnostic to all handlers.
type Tee []Handler

func (t Tee) Handle(err error) {
	for _, h := range t {
		if h != nil {
			h.Handle(err)
		}
	}
}

func kindOf(err error) Kind {
	var ice *InvalidContainerError
	if errors.As(err, &ice) {
		return ice.Kind
	}
	return ""
}
