// Package stubfile assembles stub declarations into class blocks and
// complete .pyi module files.
package stubfile

import (
	"io"
	"strings"

	"github.com/teranos/pystub/stub"
)

// ClassInfo is the registration descriptor of a class.
type ClassInfo struct {
	Name    string
	Doc     string
	Bases   []stub.TypeSource
	Members []stub.MemberInfo
	New     *stub.NewInfo
	Methods []stub.MethodInfo
}

// ClassDef is a class block ready to render.
type ClassDef struct {
	Name    string
	Doc     string
	Bases   []stub.TypeInfo
	Members []stub.MemberDef
	New     *stub.NewDef
	Methods []stub.MethodDef
}

// NewClassDef converts a class descriptor and all declarations inside it.
func NewClassDef(info ClassInfo) ClassDef {
	def := ClassDef{
		Name:    info.Name,
		Doc:     info.Doc,
		Bases:   make([]stub.TypeInfo, len(info.Bases)),
		Members: make([]stub.MemberDef, len(info.Members)),
		Methods: make([]stub.MethodDef, len(info.Methods)),
	}
	for i, b := range info.Bases {
		def.Bases[i] = b.Resolve()
	}
	for i, m := range info.Members {
		def.Members[i] = stub.NewMemberDef(m)
	}
	if info.New != nil {
		n := stub.NewNewDef(*info.New)
		def.New = &n
	}
	for i, m := range info.Methods {
		def.Methods[i] = stub.NewMethodDef(m)
	}
	return def
}

// Imports returns the union of every declaration's imports and the bases'.
func (c ClassDef) Imports() stub.ImportSet {
	imports := stub.ImportSet{}
	for _, b := range c.Bases {
		imports.Merge(b.Import)
	}
	for _, d := range c.declarations() {
		imports.Merge(d.Imports())
	}
	return imports
}

// declarations returns the body in output order: members, constructor,
// methods.
func (c ClassDef) declarations() []stub.Declaration {
	decls := make([]stub.Declaration, 0, len(c.Members)+len(c.Methods)+1)
	for _, m := range c.Members {
		decls = append(decls, m)
	}
	if c.New != nil {
		decls = append(decls, *c.New)
	}
	for _, m := range c.Methods {
		decls = append(decls, m)
	}
	return decls
}

// Render writes the class header at ctx and its body one level deeper.
func (c ClassDef) Render(w io.Writer, ctx stub.Context) error {
	header := "class " + c.Name
	if len(c.Bases) > 0 {
		names := make([]string, len(c.Bases))
		for i, b := range c.Bases {
			names[i] = b.Name
		}
		header += "(" + strings.Join(names, ", ") + ")"
	}
	if _, err := io.WriteString(w, ctx.Indent()+header+":\n"); err != nil {
		return err
	}

	body := ctx.Nested()
	decls := c.declarations()
	if c.Doc == "" && len(decls) == 0 {
		_, err := io.WriteString(w, body.Indent()+"...\n")
		return err
	}
	if err := stub.DocBlock(c.Doc).Render(w, body); err != nil {
		return err
	}
	for _, d := range decls {
		if err := d.Render(w, body); err != nil {
			return err
		}
	}
	return nil
}

var _ stub.Declaration = ClassDef{}
