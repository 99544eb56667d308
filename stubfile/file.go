package stubfile

import (
	"bytes"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/teranos/pystub/stub"
)

// Header is written at the top of every generated file.
const Header = "# This file is automatically generated by pystub\n# ruff: noqa: E501, F401\n"

// File is one generated .pyi module.
type File struct {
	// Module is the dotted Python module name, e.g. "geometry.shapes".
	Module string
	// Classes are rendered in order.
	Classes []ClassDef
	// NoHeader omits the generated-file header.
	NoHeader bool
	// Parallel renders classes concurrently. Output is identical either way.
	Parallel bool
	// Indent is the per-level indentation, DefaultIndentUnit when empty.
	Indent string
}

// Imports returns the modules the file must import: the union over all
// classes, without the current module and without Module itself.
func (f *File) Imports() stub.ImportSet {
	imports := stub.ImportSet{}
	for _, c := range f.Classes {
		imports.Merge(c.Imports())
	}
	delete(imports, stub.CurrentModule)
	delete(imports, stub.ModuleRef(f.Module))
	return imports
}

// Render writes the complete file to w. A failed write is returned as is
// and nothing further is written.
func (f *File) Render(w io.Writer) error {
	var head bytes.Buffer
	if !f.NoHeader {
		head.WriteString(Header)
		head.WriteString("\n")
	}
	if imports := f.Imports(); imports.Len() > 0 {
		for _, ref := range imports.Sorted() {
			head.WriteString("import " + string(ref) + "\n")
		}
		head.WriteString("\n")
	}
	if _, err := w.Write(head.Bytes()); err != nil {
		return err
	}

	blocks, err := f.renderClasses()
	if err != nil {
		return err
	}
	for i, b := range blocks {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Bytes renders the file into memory.
func (f *File) Bytes() []byte {
	var buf bytes.Buffer
	_ = f.Render(&buf)
	return buf.Bytes()
}

// renderClasses renders every class into its own buffer. Each class gets
// its own root context, so concurrent rendering shares no state.
func (f *File) renderClasses() ([][]byte, error) {
	ctx := stub.Root()
	if f.Indent != "" {
		ctx = ctx.WithUnit(f.Indent)
	}
	blocks := make([][]byte, len(f.Classes))

	if !f.Parallel {
		for i, c := range f.Classes {
			var buf bytes.Buffer
			if err := c.Render(&buf, ctx); err != nil {
				return nil, err
			}
			blocks[i] = buf.Bytes()
		}
		return blocks, nil
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range f.Classes {
		g.Go(func() error {
			var buf bytes.Buffer
			if err := c.Render(&buf, ctx); err != nil {
				return err
			}
			blocks[i] = buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}
