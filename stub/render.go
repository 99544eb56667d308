package stub

import (
	"fmt"
	"io"
	"strings"
)

// Renderer is implemented by every declaration that can write itself as
// stub text.
type Renderer interface {
	Render(w io.Writer, ctx Context) error
}

// Declaration is a renderable stub fragment that also reports its imports.
type Declaration interface {
	Renderer
	Importer
}

// Format renders r into a string. Writes to a strings.Builder never fail.
func Format(r Renderer, ctx Context) string {
	var sb strings.Builder
	_ = r.Render(&sb, ctx)
	return sb.String()
}

// printer writes to an output sink and keeps the first error. Once a write
// fails every later write is skipped.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// docLines splits a doc string into lines. A single trailing newline does
// not produce an extra empty line and carriage returns are dropped.
func docLines(doc string) []string {
	doc = strings.TrimSuffix(doc, "\n")
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// escapeDoc keeps a doc from closing its own triple-quoted block early.
func escapeDoc(doc string) string {
	return strings.ReplaceAll(doc, `"""`, `\"\"\"`)
}

// writeInlineDoc writes `"""<doc>"""` with the opening delimiter at indent
// and every continuation line at the same indent.
func writeInlineDoc(p *printer, indent, doc string) {
	lines := docLines(escapeDoc(doc))
	last := len(lines) - 1
	// An unescaped quote or backslash right before the closing delimiter
	// would merge with it.
	l := lines[last]
	if n := trailingBackslashes(l); n%2 == 1 {
		lines[last] = l + `\`
	} else if body, ok := strings.CutSuffix(l, `"`); ok && trailingBackslashes(body)%2 == 0 {
		lines[last] = body + `\"`
	}
	p.printf(`%s"""`, indent)
	for i, l := range lines {
		if i > 0 {
			p.print("\n")
			if l != "" {
				p.print(indent)
			}
		}
		p.print(l)
	}
	p.print("\"\"\"\n")
}

func trailingBackslashes(s string) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] == '\\' {
		n++
	}
	return n
}

// writeBlockDoc writes a raw doc block with delimiters on their own lines.
func writeBlockDoc(p *printer, indent, doc string) {
	p.printf("%sr\"\"\"\n", indent)
	for _, l := range docLines(escapeDoc(doc)) {
		if l == "" {
			p.print("\n")
			continue
		}
		p.printf("%s%s\n", indent, l)
	}
	p.printf("%s\"\"\"\n", indent)
}

// DocBlock renders a raw documentation block with its delimiters on their
// own lines at the context's indent.
type DocBlock string

// Render implements Renderer. An empty block renders nothing.
func (d DocBlock) Render(w io.Writer, ctx Context) error {
	if d == "" {
		return nil
	}
	p := &printer{w: w}
	writeBlockDoc(p, ctx.Indent(), string(d))
	return p.err
}

var (
	_ Renderer    = DocBlock("")
	_ Declaration = MemberDef{}
	_ Declaration = MethodDef{}
	_ Declaration = NewDef{}
)
