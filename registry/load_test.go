package registry

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pystub/errors"
	"github.com/teranos/pystub/stubfile"
)

const geometryStub = stubfile.Header + `
import collections.abc
import typing

class Point:
    r"""
    A 2D point.
    """
    @property
    def x(self) -> float:
        """the x coordinate"""
        ...
    tags: typing.Sequence[str]
    def __new__(cls, x: float, y: float = 0.0): ...
    @classmethod
    def origin(cls) -> Point: ...
    @staticmethod
    def distance(a: Point, b: Point) -> float:
        r"""
        Euclidean distance.
        """

class Canvas(collections.abc.Sized):
    def draw(self, *points: Point) -> None: ...
`

func TestLoadFile(t *testing.T) {
	for _, name := range []string{"geometry.toml", "geometry.yaml"} {
		t.Run(name, func(t *testing.T) {
			r := New()
			require.NoError(t, r.LoadFile(filepath.Join("testdata", name)))

			assert.Equal(t, []string{"geometry"}, r.Modules())
			assert.Equal(t, geometryStub, string(r.File("geometry").Bytes()))
		})
	}
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	f, err = FormatOf("b.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatOf("b.json")
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		target error
		msg    string
	}{
		{
			name:   "unknown receiver",
			format: FormatTOML,
			input:  "module = \"m\"\n[[classes]]\nname = \"A\"\n[[classes.methods]]\nname = \"f\"\nreceiver = \"both\"\n",
			target: errors.ErrUnknownReceiver,
			msg:    "class A: method f",
		},
		{
			name:   "member without type",
			format: FormatYAML,
			input:  "module: m\nclasses:\n  - name: A\n    members:\n      - name: x\n",
			target: errors.ErrInvalidDescriptor,
			msg:    "member x has no type",
		},
		{
			name:   "bad arg kind",
			format: FormatYAML,
			input:  "module: m\nclasses:\n  - name: A\n    new:\n      args:\n        - {name: x, type: int, kind: \"***\"}\n",
			target: errors.ErrInvalidDescriptor,
			msg:    "__new__",
		},
		{
			name:   "missing module",
			format: FormatTOML,
			input:  "[[classes]]\nname = \"A\"\n",
			target: errors.ErrInvalidDescriptor,
			msg:    "module name",
		},
		{
			name:   "duplicate class",
			format: FormatTOML,
			input:  "module = \"m\"\n[[classes]]\nname = \"A\"\n[[classes]]\nname = \"A\"\n",
			target: errors.ErrDuplicateClass,
			msg:    "m.A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Load(strings.NewReader(tt.input), tt.format)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	assert.Error(t, New().Load(strings.NewReader("module = "), FormatTOML))
	assert.Error(t, New().Load(strings.NewReader("module: m\nunknown: 1\n"), FormatYAML))
	assert.Error(t, New().Load(strings.NewReader(""), Format("json")))
}

func TestLoadEmptyYAML(t *testing.T) {
	r := New()
	require.NoError(t, r.Load(strings.NewReader(""), FormatYAML))
	assert.Equal(t, 0, r.Len())
}

func TestLoadFileMissing(t *testing.T) {
	err := New().LoadFile(filepath.Join("testdata", "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.toml")
}
