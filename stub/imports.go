package stub

import (
	"maps"
	"slices"
)

// ModuleRef names a Python module a type annotation depends on.
type ModuleRef string

// CurrentModule refers to the module being generated. It never turns into
// an import statement.
const CurrentModule ModuleRef = ""

// ImportSet is a set of module references.
type ImportSet map[ModuleRef]struct{}

// Importer is implemented by everything that can report the modules its
// rendered text requires.
type Importer interface {
	Imports() ImportSet
}

// NewImportSet returns a set holding refs.
func NewImportSet(refs ...ModuleRef) ImportSet {
	s := make(ImportSet, len(refs))
	for _, r := range refs {
		s[r] = struct{}{}
	}
	return s
}

// Add inserts refs into s.
func (s ImportSet) Add(refs ...ModuleRef) {
	for _, r := range refs {
		s[r] = struct{}{}
	}
}

// Merge inserts every member of other into s.
func (s ImportSet) Merge(other ImportSet) {
	for r := range other {
		s[r] = struct{}{}
	}
}

// Has reports whether ref is in s.
func (s ImportSet) Has(ref ModuleRef) bool {
	_, ok := s[ref]
	return ok
}

// Len returns the number of distinct references.
func (s ImportSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of s. Cloning a nil set yields an
// empty, non-nil set.
func (s ImportSet) Clone() ImportSet {
	out := make(ImportSet, len(s))
	maps.Copy(out, s)
	return out
}

// Sorted returns the references in lexical order.
func (s ImportSet) Sorted() []ModuleRef {
	return slices.Sorted(maps.Keys(s))
}
