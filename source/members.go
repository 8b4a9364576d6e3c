package source

import (
	"sort"
	"strings"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
)

// Members returns the placeable members of c and its ancestors: fields
// and methods carrying a widget annotation, root-most ancestor first and
// in declaration order within each class, then stably sorted by rank.
// Members named in c's Ignore(members) are left out.
func Members(idx *java.Index, c *java.ClassModel) []*Source {
	if c == nil {
		return nil
	}
	ignored := ignoredMembers(c)

	var result []*Source
	for _, cls := range idx.Ancestors(c) {
		for _, f := range cls.Fields {
			if f.IsStatic {
				continue
			}
			s := FromField(cls, f)
			s.reportingClass = c
			if s.IsWidget() && !isIgnored(s, ignored) {
				result = append(result, s)
			}
		}
		for _, m := range cls.Methods {
			if m.IsStatic {
				continue
			}
			s := FromMethod(cls, m)
			s.reportingClass = c
			if s.IsWidget() && !isIgnored(s, ignored) {
				result = append(result, s)
			}
		}
	}
	SortByRank(result)
	return result
}

// SortByRank orders sources by ascending rank. The sort is stable, so
// equally ranked sources keep their declaration order.
func SortByRank(sources []*Source) {
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Rank() < sources[j].Rank()
	})
}

func ignoredMembers(c *java.ClassModel) []string {
	a, ok := c.Annotation(api.Ignore)
	if !ok {
		return nil
	}
	return a.Strings("members")
}

// isIgnored matches entries written as "name", "Class#name" or
// "pkg.Class#name".
func isIgnored(s *Source, ignored []string) bool {
	for _, entry := range ignored {
		owner, name, qualified := strings.Cut(entry, "#")
		if !qualified {
			name, owner = entry, ""
		}
		name = strings.TrimSuffix(name, "()")
		if name != s.Name() {
			continue
		}
		if owner == "" {
			return true
		}
		decl := s.DeclaringClass()
		if decl != nil && (decl.Name == owner || decl.SimpleName == owner) {
			return true
		}
	}
	return false
}
