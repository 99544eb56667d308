package stub

import "io"

// MemberInfo is the registration descriptor of an attribute or property.
type MemberInfo struct {
	Name     string
	Type     TypeSource
	Doc      string
	Property bool
}

// MemberDef is a class attribute, or a read-only property when IsProperty
// is set.
type MemberDef struct {
	IsProperty bool
	Name       string
	Type       TypeInfo
	Doc        string
}

// NewMemberDef converts a descriptor, resolving its type once.
func NewMemberDef(info MemberInfo) MemberDef {
	return MemberDef{
		IsProperty: info.Property,
		Name:       info.Name,
		Type:       resolve(info.Type),
		Doc:        info.Doc,
	}
}

// Imports implements Importer.
func (m MemberDef) Imports() ImportSet {
	return m.Type.Imports()
}

// Render writes the member at ctx.
//
// A plain attribute is a single `name: type` line, followed by its doc
// block when it has one. A property is an accessor with a `...` body.
func (m MemberDef) Render(w io.Writer, ctx Context) error {
	p := &printer{w: w}
	indent := ctx.Indent()

	if !m.IsProperty {
		p.printf("%s%s: %s\n", indent, m.Name, m.Type)
		if m.Doc != "" {
			writeInlineDoc(p, indent, m.Doc)
		}
		return p.err
	}

	inner := ctx.Nested().Indent()
	p.printf("%s@property\n", indent)
	p.printf("%sdef %s(self) -> %s:\n", indent, m.Name, m.Type)
	if m.Doc != "" {
		writeInlineDoc(p, inner, m.Doc)
	}
	p.printf("%s...\n", inner)
	return p.err
}
