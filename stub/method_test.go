package stub

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodDefRender(t *testing.T) {
	x := Arg{Name: "x", Type: floatType}
	y := Arg{Name: "y", Type: floatType}

	tests := []struct {
		name     string
		method   MethodDef
		expected string
	}{
		{
			name:     "instance method without args",
			method:   MethodDef{Name: "area", Return: floatType},
			expected: "    def area(self) -> float: ...\n",
		},
		{
			name:     "instance method with args",
			method:   MethodDef{Name: "translate", Args: []Arg{x, y}, Return: NoneType},
			expected: "    def translate(self, x: float, y: float) -> None: ...\n",
		},
		{
			name:   "class method",
			method: MethodDef{Name: "origin", Return: NewTypeInfo("Point"), Receiver: Class},
			expected: "    @classmethod\n" +
				"    def origin(cls) -> Point: ...\n",
		},
		{
			name:   "class method with args",
			method: MethodDef{Name: "from_xy", Args: []Arg{x, y}, Return: NewTypeInfo("Point"), Receiver: Class},
			expected: "    @classmethod\n" +
				"    def from_xy(cls, x: float, y: float) -> Point: ...\n",
		},
		{
			name:   "static method without args",
			method: MethodDef{Name: "dimensions", Return: intType, Receiver: Static},
			expected: "    @staticmethod\n" +
				"    def dimensions() -> int: ...\n",
		},
		{
			name:   "static method with args",
			method: MethodDef{Name: "distance", Args: []Arg{x, y}, Return: floatType, Receiver: Static},
			expected: "    @staticmethod\n" +
				"    def distance(x: float, y: float) -> float: ...\n",
		},
		{
			name:   "instance method with doc",
			method: MethodDef{Name: "area", Return: floatType, Doc: "Area of the shape."},
			expected: "    def area(self) -> float:\n" +
				"        r\"\"\"\n" +
				"        Area of the shape.\n" +
				"        \"\"\"\n",
		},
		{
			name: "static method with multi-line doc",
			method: MethodDef{
				Name:     "parse",
				Args:     []Arg{{Name: "text", Type: strType}},
				Return:   NewTypeInfo("Point"),
				Doc:      "Parse a point.\n\nAccepts `x,y` pairs.\n",
				Receiver: Static,
			},
			expected: "    @staticmethod\n" +
				"    def parse(text: str) -> Point:\n" +
				"        r\"\"\"\n" +
				"        Parse a point.\n" +
				"\n" +
				"        Accepts `x,y` pairs.\n" +
				"        \"\"\"\n",
		},
		{
			name: "defaults and variadics",
			method: MethodDef{
				Name: "scale",
				Args: []Arg{
					{Name: "factor", Type: floatType, Default: "1.0"},
					{Name: "axes", Type: intType, Kind: VarPositional},
					{Name: "options", Type: anyType, Kind: VarKeyword},
				},
				Return: NoneType,
			},
			expected: "    def scale(self, factor: float = 1.0, *axes: int, **options: typing.Any) -> None: ...\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.method, Root().Nested()))
		})
	}
}

func TestMethodDefReceiverBinding(t *testing.T) {
	args := []Arg{{Name: "a", Type: intType}, {Name: "b", Type: intType}, {Name: "c", Type: intType}}

	tests := []struct {
		receiver   Receiver
		decorator  string
		paramsText string
	}{
		{Instance, "", "self, a: int, b: int, c: int"},
		{Class, "@classmethod", "cls, a: int, b: int, c: int"},
		{Static, "@staticmethod", "a: int, b: int, c: int"},
	}

	for _, tt := range tests {
		t.Run(tt.receiver.String(), func(t *testing.T) {
			out := Format(MethodDef{Name: "f", Args: args, Return: intType, Receiver: tt.receiver}, Root())
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

			sig := lines[len(lines)-1]
			if tt.decorator == "" {
				require.Len(t, lines, 1)
			} else {
				require.Len(t, lines, 2)
				assert.Equal(t, tt.decorator, lines[0])
			}

			params := sig[strings.Index(sig, "(")+1 : strings.Index(sig, ")")]
			assert.Equal(t, tt.paramsText, params)
			assert.False(t, strings.HasPrefix(params, ", "))
			assert.False(t, strings.HasSuffix(params, ", "))
		})
	}
}

func TestNewMethodDef(t *testing.T) {
	ret := &countingSource{info: NewTypeInfo("Point")}
	argSrc := &countingSource{info: floatType}

	m := NewMethodDef(MethodInfo{
		Name: "from_polar",
		Args: []ArgInfo{
			{Name: "r", Type: argSrc},
			{Name: "theta", Type: argSrc, Default: "0.0"},
		},
		Return:   ret,
		Doc:      "Build from polar coordinates.",
		Receiver: Class,
	})

	assert.Equal(t, 1, ret.calls)
	assert.Equal(t, 2, argSrc.calls)
	require.Len(t, m.Args, 2)
	assert.Equal(t, "r", m.Args[0].Name)
	assert.Equal(t, "theta", m.Args[1].Name)
	assert.Equal(t, "0.0", m.Args[1].Default)
	assert.Equal(t, Class, m.Receiver)
	assert.Equal(t, "Point", m.Return.Name)
}

func TestMethodDefImports(t *testing.T) {
	m := MethodDef{
		Name: "convert",
		Args: []Arg{
			{Name: "values", Type: arrayType},
			{Name: "hint", Type: anyType},
			{Name: "more", Type: NewTypeInfo("typing.Sequence[numpy.float64]", "typing", "numpy")},
		},
		Return: NewTypeInfo("typing.Optional[datetime.datetime]", "typing", "datetime"),
	}

	assert.Equal(t, []ModuleRef{"datetime", "numpy", "numpy.typing", "typing"}, m.Imports().Sorted())
}

func TestMethodDefRenderIsIdempotent(t *testing.T) {
	m := MethodDef{Name: "area", Return: floatType, Doc: "Area."}

	first := Format(m, Root().Nested())
	second := Format(m, Root().Nested())
	assert.Equal(t, first, second)
	assert.Equal(t, "Area.", m.Doc)
}

func TestMethodDefSinkError(t *testing.T) {
	m := MethodDef{Name: "area", Return: floatType, Receiver: Static}

	w := &failingWriter{ok: 0}
	err := m.Render(w, Root())

	assert.True(t, err == errSink)
	assert.Equal(t, 1, w.writes)
	assert.Empty(t, w.buf)
}
