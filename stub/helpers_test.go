package stub

import (
	"errors"
	"io"
)

var (
	floatType = NewTypeInfo("float")
	intType   = NewTypeInfo("int")
	strType   = NewTypeInfo("str")
	anyType   = NewTypeInfo("typing.Any", "typing")
	arrayType = NewTypeInfo("numpy.typing.NDArray[numpy.float64]", "numpy", "numpy.typing")
)

var errSink = errors.New("sink closed")

// failingWriter accepts ok writes and fails every write after that.
type failingWriter struct {
	ok     int
	writes int
	buf    []byte
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.ok {
		return 0, errSink
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

var _ io.Writer = (*failingWriter)(nil)

// countingSource records how many times it was resolved.
type countingSource struct {
	info  TypeInfo
	calls int
}

func (c *countingSource) Resolve() TypeInfo {
	c.calls++
	return c.info
}
