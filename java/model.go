package java

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

// ClassModel is the descriptor of one Java class as delivered by the
// annotation extraction step. Fields and methods are kept in declaration
// order; InnerClasses lists nested classes by name in declaration order.
type ClassModel struct {
	Name           string            `json:"name" yaml:"name"`
	SimpleName     string            `json:"simpleName,omitempty" yaml:"simpleName,omitempty"`
	Package        string            `json:"package,omitempty" yaml:"package,omitempty"`
	SuperClass     string            `json:"superClass,omitempty" yaml:"superClass,omitempty"`
	Interfaces     []string          `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Visibility     Visibility        `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Kind           ClassKind         `json:"kind,omitempty" yaml:"kind,omitempty"`
	IsAbstract     bool              `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	IsStatic       bool              `json:"static,omitempty" yaml:"static,omitempty"`
	EnclosingClass string            `json:"enclosingClass,omitempty" yaml:"enclosingClass,omitempty"`
	SourceFile     string            `json:"sourceFile,omitempty" yaml:"sourceFile,omitempty"`
	Annotations    []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	InnerClasses   []string          `json:"innerClasses,omitempty" yaml:"innerClasses,omitempty"`
	Fields         []FieldModel      `json:"fields,omitempty" yaml:"fields,omitempty"`
	Methods        []MethodModel     `json:"methods,omitempty" yaml:"methods,omitempty"`

	// Nested holds inline declarations of nested classes. The loader
	// flattens them into the index and records their names in InnerClasses.
	Nested []*ClassModel `json:"nested,omitempty" yaml:"nested,omitempty"`
}

type FieldModel struct {
	Name        string            `json:"name" yaml:"name"`
	Type        TypeModel         `json:"type" yaml:"type"`
	Visibility  Visibility        `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic    bool              `json:"static,omitempty" yaml:"static,omitempty"`
	IsFinal     bool              `json:"final,omitempty" yaml:"final,omitempty"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type MethodModel struct {
	Name        string            `json:"name" yaml:"name"`
	ReturnType  TypeModel         `json:"returnType" yaml:"returnType"`
	Visibility  Visibility        `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic    bool              `json:"static,omitempty" yaml:"static,omitempty"`
	IsAbstract  bool              `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	IsDefault   bool              `json:"default,omitempty" yaml:"default,omitempty"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type TypeModel struct {
	Name       string `json:"name" yaml:"name"`
	ArrayDepth int    `json:"arrayDepth,omitempty" yaml:"arrayDepth,omitempty"`
}

func (t TypeModel) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func (t TypeModel) IsArray() bool {
	return t.ArrayDepth > 0
}

func (t TypeModel) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}

func (t TypeModel) String() string {
	s := t.Name
	for i := 0; i < t.ArrayDepth; i++ {
		s += "[]"
	}
	return s
}

// Annotation returns the first annotation of the given type.
func (c *ClassModel) Annotation(typ string) (AnnotationModel, bool) {
	return findAnnotation(c.Annotations, typ)
}

func (c *ClassModel) HasAnnotation(typ string) bool {
	_, ok := c.Annotation(typ)
	return ok
}

func (f *FieldModel) Annotation(typ string) (AnnotationModel, bool) {
	return findAnnotation(f.Annotations, typ)
}

func (m *MethodModel) Annotation(typ string) (AnnotationModel, bool) {
	return findAnnotation(m.Annotations, typ)
}

func findAnnotation(anns []AnnotationModel, typ string) (AnnotationModel, bool) {
	for _, a := range anns {
		if a.Is(typ) {
			return a, true
		}
	}
	return AnnotationModel{}, false
}
