package stub

import "strings"

// ArgKind distinguishes ordinary parameters from variadic collectors.
type ArgKind int

const (
	// Positional is an ordinary parameter.
	Positional ArgKind = iota
	// VarPositional collects extra positional arguments (*args).
	VarPositional
	// VarKeyword collects extra keyword arguments (**kwargs).
	VarKeyword
)

// ArgInfo is the registration descriptor of one parameter.
type ArgInfo struct {
	Name string
	Type TypeSource
	// Default is the rendered default value, empty when the parameter has none.
	Default string
	Kind    ArgKind
}

// Arg is one parameter of a method or constructor.
type Arg struct {
	Name    string
	Type    TypeInfo
	Default string
	Kind    ArgKind
}

// NewArg converts a descriptor, resolving its type once.
func NewArg(info ArgInfo) Arg {
	return Arg{
		Name:    info.Name,
		Type:    resolve(info.Type),
		Default: info.Default,
		Kind:    info.Kind,
	}
}

// String renders the parameter as `name: type[ = default]`.
func (a Arg) String() string {
	var sb strings.Builder
	switch a.Kind {
	case VarPositional:
		sb.WriteString("*")
	case VarKeyword:
		sb.WriteString("**")
	}
	sb.WriteString(a.Name)
	sb.WriteString(": ")
	sb.WriteString(a.Type.Name)
	if a.Default != "" && a.Kind == Positional {
		sb.WriteString(" = ")
		sb.WriteString(a.Default)
	}
	return sb.String()
}

// Imports implements Importer.
func (a Arg) Imports() ImportSet {
	return a.Type.Imports()
}

func newArgs(infos []ArgInfo) []Arg {
	args := make([]Arg, len(infos))
	for i, info := range infos {
		args[i] = NewArg(info)
	}
	return args
}

func argImports(into ImportSet, args []Arg) {
	for _, a := range args {
		into.Merge(a.Type.Import)
	}
}
