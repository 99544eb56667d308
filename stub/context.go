package stub

import "strings"

// DefaultIndentUnit is the indentation added per nesting level.
const DefaultIndentUnit = "    "

// Context carries the nesting depth a declaration is rendered at.
// The zero value is the top level with the default indent unit.
type Context struct {
	depth int
	unit  string
}

// Root returns a top-level context.
func Root() Context {
	return Context{unit: DefaultIndentUnit}
}

// WithUnit returns a copy of ctx that indents by unit per level.
func (c Context) WithUnit(unit string) Context {
	c.unit = unit
	return c
}

// Nested returns a context one level deeper than c. The receiver is left
// untouched, so leaving the nested scope restores the previous depth.
func (c Context) Nested() Context {
	c.depth++
	return c
}

// Depth returns the nesting depth.
func (c Context) Depth() int {
	return c.depth
}

// Unit returns the per-level indentation.
func (c Context) Unit() string {
	if c.unit == "" {
		return DefaultIndentUnit
	}
	return c.unit
}

// Indent returns the line prefix for the current depth.
func (c Context) Indent() string {
	return strings.Repeat(c.Unit(), c.depth)
}
