package java

import (
	"strings"
)

// Index resolves class descriptors by name. It is filled once per build
// and read afterwards; it is not safe for concurrent mutation.
type Index struct {
	classes map[string]*ClassModel
	order   []string
}

func NewIndex(classes ...*ClassModel) *Index {
	idx := &Index{classes: make(map[string]*ClassModel)}
	for _, c := range classes {
		idx.Add(c)
	}
	return idx
}

// Add registers a class and, recursively, its inline nested classes. A
// class added under an existing name replaces the previous descriptor.
// Adding the same descriptor to several indexes is allowed.
func (idx *Index) Add(c *ClassModel) {
	if c == nil || c.Name == "" {
		return
	}
	c.Name = normalizeClassName(c.Name)
	if c.SimpleName == "" || c.Package == "" {
		pkg, simple := splitClassName(c.Name)
		if c.SimpleName == "" {
			c.SimpleName = simple
		}
		if c.Package == "" && c.EnclosingClass == "" {
			c.Package = pkg
		}
	}
	if c.Kind == "" {
		c.Kind = ClassKindClass
	}
	if c.SuperClass != "" {
		c.SuperClass = normalizeClassName(c.SuperClass)
	}
	for i, name := range c.InnerClasses {
		c.InnerClasses[i] = normalizeClassName(name)
	}

	for _, nested := range c.Nested {
		if nested == nil {
			continue
		}
		if !strings.Contains(nested.Name, ".") {
			nested.Name = c.Name + "." + nested.Name
		}
		nested.EnclosingClass = c.Name
		if nested.Package == "" {
			nested.Package = c.Package
		}
		name := normalizeClassName(nested.Name)
		if !containsString(c.InnerClasses, name) {
			c.InnerClasses = append(c.InnerClasses, name)
		}
		idx.Add(nested)
	}

	if _, exists := idx.classes[c.Name]; !exists {
		idx.order = append(idx.order, c.Name)
	}
	idx.classes[c.Name] = c
}

func (idx *Index) Lookup(name string) *ClassModel {
	if idx == nil || name == "" {
		return nil
	}
	return idx.classes[normalizeClassName(name)]
}

// Classes returns every registered class in registration order.
func (idx *Index) Classes() []*ClassModel {
	result := make([]*ClassModel, 0, len(idx.order))
	for _, name := range idx.order {
		result = append(result, idx.classes[name])
	}
	return result
}

// Ancestors returns the class and its known superclasses ordered from the
// root-most ancestor down to the class itself. The walk stops at the first
// superclass that is not in the index (typically java.lang.Object).
func (idx *Index) Ancestors(c *ClassModel) []*ClassModel {
	var chain []*ClassModel
	seen := make(map[string]bool)
	for cur := c; cur != nil && !seen[cur.Name]; cur = idx.Lookup(cur.SuperClass) {
		seen[cur.Name] = true
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// NestedClasses returns the nested classes of c in declaration order.
// Names that cannot be resolved are skipped.
func (idx *Index) NestedClasses(c *ClassModel) []*ClassModel {
	var result []*ClassModel
	for _, name := range c.InnerClasses {
		if nested := idx.Lookup(name); nested != nil {
			result = append(result, nested)
		}
	}
	return result
}

// normalizeClassName turns binary names (a.b.Outer$Inner) into source
// names (a.b.Outer.Inner).
func normalizeClassName(name string) string {
	return strings.ReplaceAll(name, "$", ".")
}

func splitClassName(fullName string) (pkg, simpleName string) {
	lastDot := strings.LastIndex(fullName, ".")
	if lastDot == -1 {
		return "", fullName
	}
	return fullName[:lastDot], fullName[lastDot+1:]
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
