// Package pytype turns Go types and textual annotations into stub.TypeInfo
// values: the annotation text plus the modules it needs imported.
package pytype

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/teranos/pystub/stub"
)

// Common annotations.
var (
	None    = stub.NewTypeInfo("None")
	Bool    = stub.NewTypeInfo("bool")
	Int     = stub.NewTypeInfo("int")
	Float   = stub.NewTypeInfo("float")
	Complex = stub.NewTypeInfo("complex")
	Str     = stub.NewTypeInfo("str")
	Bytes   = stub.NewTypeInfo("bytes")
	Any     = stub.NewTypeInfo("typing.Any", "typing")
)

// Provider maps Go types to Python annotations. Types registered with
// Register take precedence over the built-in mapping.
type Provider struct {
	mu     sync.RWMutex
	custom map[reflect.Type]stub.TypeInfo
}

// NewProvider returns a Provider with the built-in mapping only.
func NewProvider() *Provider {
	p := &Provider{custom: make(map[reflect.Type]stub.TypeInfo)}
	p.Register(reflect.TypeOf(time.Time{}), stub.NewTypeInfo("datetime.datetime", "datetime"))
	p.Register(reflect.TypeOf(time.Duration(0)), stub.NewTypeInfo("datetime.timedelta", "datetime"))
	p.Register(reflect.TypeOf(json.RawMessage(nil)), Any)
	return p
}

// Default is the provider used by the package-level helpers.
var Default = NewProvider()

// Register maps t to info.
func (p *Provider) Register(t reflect.Type, info stub.TypeInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.custom[t] = info.Resolve()
}

// Of returns the annotation for t.
func (p *Provider) Of(t reflect.Type) stub.TypeInfo {
	p.mu.RLock()
	info, ok := p.custom[t]
	p.mu.RUnlock()
	if ok {
		return info.Resolve()
	}

	switch t.Kind() {
	case reflect.Bool:
		return Bool.Resolve()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int.Resolve()
	case reflect.Float32, reflect.Float64:
		return Float.Resolve()
	case reflect.Complex64, reflect.Complex128:
		return Complex.Resolve()
	case reflect.String:
		return Str.Resolve()
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return Bytes.Resolve()
		}
		return List(p.Of(t.Elem()))
	case reflect.Map:
		return Dict(p.Of(t.Key()), p.Of(t.Elem()))
	case reflect.Pointer:
		return Optional(p.Of(t.Elem()))
	case reflect.Struct:
		if t.Name() != "" {
			// Named structs are classes of the module being generated.
			return stub.NewTypeInfo(t.Name())
		}
	case reflect.Func:
		return stub.NewTypeInfo("typing.Callable[..., typing.Any]", "typing")
	}
	return Any.Resolve()
}

// For returns a deferred source for the annotation of the Go type T. The
// type is looked up when the source is resolved, not when For is called.
func (p *Provider) For(t reflect.Type) stub.TypeFunc {
	return func() stub.TypeInfo { return p.Of(t) }
}

// Of returns the annotation for t using the Default provider.
func Of(t reflect.Type) stub.TypeInfo {
	return Default.Of(t)
}

// For returns a deferred source for the annotation of T using the Default
// provider.
func For[T any]() stub.TypeFunc {
	return Default.For(reflect.TypeFor[T]())
}

// Named returns the annotation for a class name defined in module. An empty
// module refers to the module being generated.
func Named(module stub.ModuleRef, name string) stub.TypeInfo {
	if module == stub.CurrentModule {
		return stub.NewTypeInfo(name)
	}
	return stub.NewTypeInfo(string(module)+"."+name, module)
}

// List returns list[elem].
func List(elem stub.TypeInfo) stub.TypeInfo {
	return generic("list", elem)
}

// Dict returns dict[key, val].
func Dict(key, val stub.TypeInfo) stub.TypeInfo {
	return generic("dict", key, val)
}

// Tuple returns tuple[elems...].
func Tuple(elems ...stub.TypeInfo) stub.TypeInfo {
	if len(elems) == 0 {
		return stub.NewTypeInfo("tuple[()]")
	}
	return generic("tuple", elems...)
}

// Union returns the PEP 604 union of the given annotations, dropping
// duplicates while keeping their first-seen order.
func Union(types ...stub.TypeInfo) stub.TypeInfo {
	seen := make(map[string]bool, len(types))
	names := make([]string, 0, len(types))
	imports := stub.ImportSet{}
	for _, t := range types {
		imports.Merge(t.Import)
		for _, part := range splitUnion(t.Name) {
			if !seen[part] {
				seen[part] = true
				names = append(names, part)
			}
		}
	}
	return stub.TypeInfo{Name: strings.Join(names, " | "), Import: imports}
}

// Optional returns `t | None`, leaving t alone if it already admits None.
func Optional(t stub.TypeInfo) stub.TypeInfo {
	return Union(t, None)
}

func generic(base string, params ...stub.TypeInfo) stub.TypeInfo {
	names := make([]string, len(params))
	imports := stub.ImportSet{}
	for i, p := range params {
		names[i] = p.Name
		imports.Merge(p.Import)
	}
	return stub.TypeInfo{Name: base + "[" + strings.Join(names, ", ") + "]", Import: imports}
}

// splitUnion splits a top-level `a | b` annotation into its members.
func splitUnion(name string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range name {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case '|':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(name[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(name[start:]))
}
