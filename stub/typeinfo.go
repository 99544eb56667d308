package stub

// TypeInfo is a rendered type annotation together with the modules it
// needs imported.
type TypeInfo struct {
	Name   string
	Import ImportSet
}

// NewTypeInfo returns a TypeInfo named name requiring refs.
func NewTypeInfo(name string, refs ...ModuleRef) TypeInfo {
	return TypeInfo{Name: name, Import: NewImportSet(refs...)}
}

func (t TypeInfo) String() string {
	return t.Name
}

// Resolve implements TypeSource. The returned value owns its import set.
func (t TypeInfo) Resolve() TypeInfo {
	return TypeInfo{Name: t.Name, Import: t.Import.Clone()}
}

// Imports implements Importer.
func (t TypeInfo) Imports() ImportSet {
	return t.Import.Clone()
}

// TypeSource produces a type annotation. Descriptors hold TypeSources so
// that types registered at load time are only resolved when stubs are
// generated.
type TypeSource interface {
	Resolve() TypeInfo
}

// TypeFunc adapts a zero-argument function to TypeSource.
type TypeFunc func() TypeInfo

// Resolve calls f.
func (f TypeFunc) Resolve() TypeInfo {
	return f().Resolve()
}

// NoneType is the annotation used when a descriptor leaves a type unset,
// e.g. a method registered without a return type.
var NoneType = TypeInfo{Name: "None"}

// resolve invokes src exactly once.
func resolve(src TypeSource) TypeInfo {
	if src == nil {
		return NoneType.Resolve()
	}
	return src.Resolve()
}
