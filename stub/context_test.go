package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextNesting(t *testing.T) {
	root := Root()
	class := root.Nested()
	method := class.Nested()

	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, "", root.Indent())
	assert.Equal(t, "    ", class.Indent())
	assert.Equal(t, "        ", method.Indent())

	// Nesting never mutates the enclosing context.
	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, 1, class.Depth())
}

func TestContextZeroValue(t *testing.T) {
	var ctx Context
	assert.Equal(t, DefaultIndentUnit, ctx.Unit())
	assert.Equal(t, DefaultIndentUnit, ctx.Nested().Indent())
}

func TestContextWithUnit(t *testing.T) {
	ctx := Root().WithUnit("\t").Nested().Nested()
	assert.Equal(t, "\t\t", ctx.Indent())
}

func TestDeclarationRenderedAtDifferentDepths(t *testing.T) {
	m := MemberDef{Name: "x", Type: intType}

	assert.Equal(t, "x: int\n", Format(m, Root()))
	assert.Equal(t, "    x: int\n", Format(m, Root().Nested()))
	assert.Equal(t, "        x: int\n", Format(m, Root().Nested().Nested()))
}
