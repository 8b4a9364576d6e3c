// Package api names the annotations, resource types and JCR properties
// shared by the generator. Annotation names may be matched by their simple
// form, so descriptors can spell them either way.
package api

const annotationsPackage = "com.exadel.aem.toolkit.api.annotations"

// Container and section annotations.
const (
	Tabs           = annotationsPackage + ".layouts.Tabs"
	Tab            = annotationsPackage + ".layouts.Tab"
	Accordion      = annotationsPackage + ".layouts.Accordion"
	AccordionPanel = annotationsPackage + ".layouts.AccordionPanel"
	FixedColumns   = annotationsPackage + ".layouts.FixedColumns"
	Column         = annotationsPackage + ".layouts.Column"
)

// Class and member level annotations.
const (
	AemComponent = annotationsPackage + ".main.AemComponent"
	Dialog       = annotationsPackage + ".main.Dialog"
	DialogField  = annotationsPackage + ".widgets.DialogField"
	Place        = annotationsPackage + ".layouts.Place"
	PlaceOn      = annotationsPackage + ".container.PlaceOn"
	Ignore       = annotationsPackage + ".meta.Ignore"
)

// Widget annotations.
const (
	TextField      = annotationsPackage + ".widgets.TextField"
	TextArea       = annotationsPackage + ".widgets.TextArea"
	Checkbox       = annotationsPackage + ".widgets.Checkbox"
	NumberField    = annotationsPackage + ".widgets.NumberField"
	Select         = annotationsPackage + ".widgets.select.Select"
	PathField      = annotationsPackage + ".widgets.PathField"
	DatePicker     = annotationsPackage + ".widgets.DatePicker"
	Hidden         = annotationsPackage + ".widgets.Hidden"
	Switch         = annotationsPackage + ".widgets.Switch"
	ColorField     = annotationsPackage + ".widgets.color.ColorField"
	RichTextEditor = annotationsPackage + ".widgets.rte.RichTextEditor"
)

// Resource types of the consuming platform.
const (
	ResourceTypeDialog       = "cq/gui/components/authoring/dialog"
	ResourceTypeContainer    = "granite/ui/components/coral/foundation/container"
	ResourceTypeTabs         = "granite/ui/components/coral/foundation/tabs"
	ResourceTypeAccordion    = "granite/ui/components/coral/foundation/accordion"
	ResourceTypeFixedColumns = "granite/ui/components/coral/foundation/fixedcolumns"

	ResourceTypeTextField   = "granite/ui/components/coral/foundation/form/textfield"
	ResourceTypeTextArea    = "granite/ui/components/coral/foundation/form/textarea"
	ResourceTypeCheckbox    = "granite/ui/components/coral/foundation/form/checkbox"
	ResourceTypeNumberField = "granite/ui/components/coral/foundation/form/numberfield"
	ResourceTypeSelect      = "granite/ui/components/coral/foundation/form/select"
	ResourceTypePathField   = "granite/ui/components/coral/foundation/form/pathfield"
	ResourceTypeDatePicker  = "granite/ui/components/coral/foundation/form/datepicker"
	ResourceTypeHidden      = "granite/ui/components/coral/foundation/form/hidden"
	ResourceTypeSwitch      = "granite/ui/components/coral/foundation/form/switch"
	ResourceTypeColorField  = "granite/ui/components/coral/foundation/form/colorfield"
	ResourceTypeRichText    = "cq/gui/components/authoring/dialog/richtext"
)

// Node names.
const (
	NodeRoot         = "jcr:root"
	NodeContent      = "content"
	NodeItems        = "items"
	NodeTabs         = "tabs"
	NodeAccordion    = "accordion"
	NodeTab          = "tab"
	NodePanel        = "accordionPanel"
	NodeColumn       = "column"
	NodeParentConfig = "parentConfig"
)

// Property names.
const (
	PropPrimaryType      = "jcr:primaryType"
	PropTitle            = "jcr:title"
	PropResourceType     = "sling:resourceType"
	PropName             = "name"
	PropFieldLabel       = "fieldLabel"
	PropFieldDescription = "fieldDescription"
	PropRequired         = "required"
	PropMaximized        = "maximized"
	PropHelpPath         = "helpPath"
	PropWidth            = "width"
	PropHeight           = "height"

	NodeTypeUnstructured = "nt:unstructured"
)

// DefaultSectionTitle is the title of the section created when a class
// has members to place but declares no container.
const DefaultSectionTitle = "Untitled"

// WidgetResourceTypes maps widget annotations to the resource type of the
// rendered field, in lookup order.
var WidgetResourceTypes = []struct {
	Annotation   string
	ResourceType string
}{
	{TextField, ResourceTypeTextField},
	{TextArea, ResourceTypeTextArea},
	{Checkbox, ResourceTypeCheckbox},
	{NumberField, ResourceTypeNumberField},
	{Select, ResourceTypeSelect},
	{PathField, ResourceTypePathField},
	{DatePicker, ResourceTypeDatePicker},
	{Hidden, ResourceTypeHidden},
	{Switch, ResourceTypeSwitch},
	{ColorField, ResourceTypeColorField},
	{RichTextEditor, ResourceTypeRichText},
}

// ContainerAnnotations are the annotations that turn a member into an
// in-dialog container widget.
var ContainerAnnotations = []string{Tabs, Accordion, FixedColumns}
