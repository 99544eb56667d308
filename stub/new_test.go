package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefRender(t *testing.T) {
	tests := []struct {
		name     string
		def      NewDef
		expected string
	}{
		{
			name:     "no arguments",
			def:      NewDef{},
			expected: "    def __new__(cls): ...\n",
		},
		{
			name:     "one argument",
			def:      NewDef{Args: []Arg{{Name: "x", Type: floatType}}},
			expected: "    def __new__(cls, x: float): ...\n",
		},
		{
			name:     "two numeric arguments",
			def:      NewDef{Args: []Arg{{Name: "x", Type: floatType}, {Name: "y", Type: floatType}}},
			expected: "    def __new__(cls, x: float, y: float): ...\n",
		},
		{
			name: "defaults",
			def: NewDef{Args: []Arg{
				{Name: "x", Type: floatType, Default: "0.0"},
				{Name: "label", Type: NewTypeInfo("str | None"), Default: "None"},
			}},
			expected: "    def __new__(cls, x: float = 0.0, label: str | None = None): ...\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.def, Root().Nested()))
		})
	}
}

func TestNewNewDef(t *testing.T) {
	src := &countingSource{info: arrayType}
	def := NewNewDef(NewInfo{Args: []ArgInfo{
		{Name: "data", Type: src},
		{Name: "copy", Type: NewTypeInfo("bool"), Default: "True"},
	}})

	assert.Equal(t, 1, src.calls)
	require.Len(t, def.Args, 2)
	assert.Equal(t, "def __new__(cls, data: numpy.typing.NDArray[numpy.float64], copy: bool = True): ...\n", Format(def, Root()))
}

func TestNewDefImports(t *testing.T) {
	def := NewDef{Args: []Arg{
		{Name: "a", Type: anyType},
		{Name: "b", Type: anyType},
		{Name: "c", Type: intType},
	}}

	assert.Equal(t, []ModuleRef{"typing"}, def.Imports().Sorted())
	assert.Equal(t, 0, NewDef{}.Imports().Len())
}

func TestNewDefSinkError(t *testing.T) {
	w := &failingWriter{ok: 1}
	err := NewDef{Args: []Arg{{Name: "x", Type: intType}}}.Render(w, Root())

	assert.True(t, err == errSink)
	assert.Equal(t, "def __new__(", string(w.buf))
}
