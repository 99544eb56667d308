package registry

import (
	"reflect"
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/pystub/pytype"
	"github.com/teranos/pystub/stub"
	"github.com/teranos/pystub/stubfile"
)

type Job struct {
	ID        string            `json:"id" doc:"job identifier"`
	Note      *string           `json:"note"`
	Attempts  int               `json:"attempts,omitempty"`
	Score     float64           `pytype:"float,property" doc:"relevance score"`
	CreatedAt time.Time         `json:"created_at"`
	Labels    map[string]string `pytype:"dict[str, str],optional"`
	Secret    string            `json:"-"`
	Raw       []byte            `pytype:"-"`
	internal  int
}

const jobStub = `class Job:
    id: str
    """job identifier"""
    note: str | None
    attempts: int
    @property
    def score(self) -> float:
        """relevance score"""
        ...
    created_at: datetime.datetime
    labels: dict[str, str] | None
    def __new__(cls, id: str, created_at: datetime.datetime, note: str | None = None, attempts: int = ..., labels: dict[str, str] | None = None): ...
`

func TestFromStruct(t *testing.T) {
	info := FromStruct("", reflect.TypeFor[*Job](), nil)
	require.NoError(t, ValidateClass(info))

	def := stubfile.NewClassDef(info)
	assert.Equal(t, jobStub, stub.Format(def, stub.Root()))
	assert.Equal(t, []stub.ModuleRef{"datetime"}, def.Imports().Sorted())
}

func TestFromStructMemberNames(t *testing.T) {
	info := FromStruct("Renamed", reflect.TypeFor[Job](), nil)

	var names []string
	for _, m := range info.Members {
		names = append(names, m.Name)
	}
	want := []string{"id", "note", "attempts", "score", "created_at", "labels"}
	if diff := pretty.Compare(want, names); diff != "" {
		t.Errorf("member names (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Renamed", info.Name)
}

func TestFromStructUsesProvider(t *testing.T) {
	type Inner struct{ V int }
	type Outer struct {
		Child Inner `json:"child"`
	}

	p := pytype.NewProvider()
	info := FromStruct("Outer", reflect.TypeFor[Outer](), p)
	p.Register(reflect.TypeFor[Inner](), pytype.Named("pkg.inner", "Inner"))

	def := stubfile.NewClassDef(info)
	assert.Equal(t, "pkg.inner.Inner", def.Members[0].Type.Name)
	assert.Equal(t, []stub.ModuleRef{"pkg.inner"}, def.Imports().Sorted())
}

func TestParseFieldTag(t *testing.T) {
	f, _ := reflect.TypeFor[Job]().FieldByName("Labels")
	tag := parseFieldTag(f)

	assert.Equal(t, fieldTag{name: "labels", pyType: "dict[str, str]", optional: true}, tag)
}
