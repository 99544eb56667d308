package pytype

import (
	"strings"
	"unicode"

	"github.com/teranos/pystub/stub"
)

// Parse returns the annotation for a textual Python type expression such
// as `dict[str, numpy.ndarray]`. Every dotted reference contributes the
// module part before its last component as an import; quoted forward
// references contribute nothing.
func Parse(expr string) stub.TypeInfo {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return None.Resolve()
	}
	info := stub.TypeInfo{Name: expr, Import: stub.ImportSet{}}
	for _, ref := range dottedRefs(expr) {
		if i := strings.LastIndexByte(ref, '.'); i > 0 {
			info.Import.Add(stub.ModuleRef(ref[:i]))
		}
	}
	return info
}

// Deferred returns a source that parses expr when resolved.
func Deferred(expr string) stub.TypeFunc {
	return func() stub.TypeInfo { return Parse(expr) }
}

// dottedRefs returns the identifier chains in expr that contain a dot.
func dottedRefs(expr string) []string {
	var refs []string
	runes := []rune(expr)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '"' || r == '\'':
			i = skipString(runes, i)
		case isIdentStart(r):
			start := i
			for i < len(runes) && (isIdentPart(runes[i]) || (runes[i] == '.' && i+1 < len(runes) && isIdentStart(runes[i+1]))) {
				i++
			}
			if ref := string(runes[start:i]); strings.Contains(ref, ".") {
				refs = append(refs, ref)
			}
		default:
			i++
		}
	}
	return refs
}

// skipString returns the index just past the string literal opening at i.
func skipString(runes []rune, i int) int {
	quote := runes[i]
	for i++; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
