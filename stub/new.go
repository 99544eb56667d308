package stub

import "io"

// NewInfo is the registration descriptor of a class constructor.
type NewInfo struct {
	Args []ArgInfo
}

// NewDef is the `__new__` declaration of a class. It never carries a doc;
// class documentation belongs to the class block.
type NewDef struct {
	Args []Arg
}

// NewNewDef converts a descriptor, keeping argument order.
func NewNewDef(info NewInfo) NewDef {
	return NewDef{Args: newArgs(info.Args)}
}

// Imports returns the union of the arguments' imports.
func (n NewDef) Imports() ImportSet {
	imports := ImportSet{}
	argImports(imports, n.Args)
	return imports
}

// Render writes `def __new__(cls, ...): ...` at ctx.
func (n NewDef) Render(w io.Writer, ctx Context) error {
	p := &printer{w: w}
	p.printf("%sdef __new__(", ctx.Indent())
	writeParams(p, "cls", n.Args)
	p.print("): ...\n")
	return p.err
}
