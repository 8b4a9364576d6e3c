// Package dialog renders the authoring dialog of a component class.
package dialog

import (
	"fmt"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/diag"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/layout"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/placement"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("dialoggen.dialog")

// Layout is the top-level arrangement of a dialog.
type Layout int

const (
	LayoutFixedColumns Layout = iota
	LayoutTabs
	LayoutAccordion
)

func (l Layout) String() string {
	switch l {
	case LayoutTabs:
		return "tabs"
	case LayoutAccordion:
		return "accordion"
	}
	return "fixed columns"
}

// DetectLayout picks the dialog layout from the annotations of c and its
// ancestors. Tabs win over an accordion, and anything else gets fixed
// columns.
func DetectLayout(idx *java.Index, c *java.ClassModel) Layout {
	ancestors := idx.Ancestors(c)
	for _, cls := range ancestors {
		if cls.HasAnnotation(api.Tabs) || hasNestedSection(idx, cls, api.Tab) {
			return LayoutTabs
		}
		if a, ok := cls.Annotation(api.Dialog); ok && len(a.Annotations("tabs", api.Tab)) > 0 {
			return LayoutTabs
		}
	}
	for _, cls := range ancestors {
		if cls.HasAnnotation(api.Accordion) || hasNestedSection(idx, cls, api.AccordionPanel) {
			return LayoutAccordion
		}
	}
	return LayoutFixedColumns
}

func hasNestedSection(idx *java.Index, c *java.ClassModel, annotation string) bool {
	for _, nested := range idx.NestedClasses(c) {
		if nested.HasAnnotation(annotation) {
			return true
		}
	}
	return false
}

// Build renders the dialog of c. Diagnostics go to handler; the returned
// error is the handler's verdict if it is a *diag.Policy.
func Build(idx *java.Index, c *java.ClassModel, handler diag.Handler) (*target.Target, error) {
	if c == nil {
		return nil, fmt.Errorf("build dialog: no class")
	}
	if handler == nil {
		handler = diag.NewPolicy(nil)
	}

	root := target.New(api.NodeRoot)
	root.Attribute(api.PropTitle, Title(c))
	root.Attribute(api.PropResourceType, api.ResourceTypeDialog)
	if a, ok := c.Annotation(api.Dialog); ok {
		root.Attribute(api.PropHelpPath, a.String("helpPath"))
		for _, key := range []string{"width", "height"} {
			if n, ok := a.Int(key); ok && n > 0 {
				root.Attribute(key, n)
			}
		}
	}

	pass := layout.NewPass(idx, handler)
	l := DetectLayout(idx, c)
	log.Infof("rendering %s dialog of %s", l, c.Name)
	switch l {
	case LayoutTabs:
		layout.HandleComplex(pass, c, root, placement.KindTab)
	case LayoutAccordion:
		layout.HandleComplex(pass, c, root, placement.KindAccordionPanel)
	default:
		layout.HandleFixedColumns(pass, c, root)
	}

	if policy, ok := handler.(*diag.Policy); ok {
		if err := policy.Err(); err != nil {
			return root, fmt.Errorf("build dialog %s: %w", c.Name, err)
		}
	}
	return root, nil
}

// BuildClass looks up the named class and renders its dialog.
func BuildClass(idx *java.Index, name string, handler diag.Handler) (*target.Target, error) {
	c := idx.Lookup(name)
	if c == nil {
		return nil, fmt.Errorf("build dialog: class %q not found", name)
	}
	return Build(idx, c, handler)
}

// Title is the dialog title: Dialog.title, else AemComponent.title, else
// the simple class name.
func Title(c *java.ClassModel) string {
	for _, annotation := range []string{api.Dialog, api.AemComponent} {
		if a, ok := c.Annotation(annotation); ok {
			if title := a.String("title"); title != "" {
				return title
			}
		}
	}
	return c.SimpleName
}

// Components returns the classes of idx that declare a dialog, in index
// order.
func Components(idx *java.Index) []*java.ClassModel {
	var result []*java.ClassModel
	for _, c := range idx.Classes() {
		if c.HasAnnotation(api.AemComponent) || c.HasAnnotation(api.Dialog) {
			result = append(result, c)
		}
	}
	return result
}
