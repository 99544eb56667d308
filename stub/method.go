package stub

import "io"

// MethodInfo is the registration descriptor of a method.
type MethodInfo struct {
	Name     string
	Args     []ArgInfo
	Return   TypeSource
	Doc      string
	Receiver Receiver
}

// MethodDef is a method declaration.
type MethodDef struct {
	Name     string
	Args     []Arg
	Return   TypeInfo
	Doc      string
	Receiver Receiver
}

// NewMethodDef converts a descriptor. Argument order is kept and every
// type is resolved once.
func NewMethodDef(info MethodInfo) MethodDef {
	return MethodDef{
		Name:     info.Name,
		Args:     newArgs(info.Args),
		Return:   resolve(info.Return),
		Doc:      info.Doc,
		Receiver: info.Receiver,
	}
}

// Imports returns the union of the return type's and the arguments' imports.
func (m MethodDef) Imports() ImportSet {
	imports := m.Return.Imports()
	argImports(imports, m.Args)
	return imports
}

// Render writes the method at ctx. Without a doc the body is an inline
// `...`; with one, the doc block is the body.
func (m MethodDef) Render(w io.Writer, ctx Context) error {
	p := &printer{w: w}
	indent := ctx.Indent()

	if deco := m.Receiver.decorator(); deco != "" {
		p.printf("%s%s\n", indent, deco)
	}
	p.printf("%sdef %s(", indent, m.Name)
	writeParams(p, m.Receiver.param(), m.Args)
	p.printf(") -> %s:", m.Return)

	if m.Doc == "" {
		p.print(" ...\n")
		return p.err
	}
	p.print("\n")
	if p.err != nil {
		return p.err
	}
	return DocBlock(m.Doc).Render(w, ctx.Nested())
}

// writeParams writes the parameter list: the receiver, if any, then each
// argument, separated by ", ".
func writeParams(p *printer, receiver string, args []Arg) {
	sep := false
	if receiver != "" {
		p.print(receiver)
		sep = true
	}
	for _, a := range args {
		if sep {
			p.print(", ")
		}
		p.print(a.String())
		sep = true
	}
}
