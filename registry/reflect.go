package registry

import (
	"reflect"
	"sort"
	"strings"

	"github.com/teranos/pystub/pytype"
	"github.com/teranos/pystub/stub"
	"github.com/teranos/pystub/stubfile"
)

// fieldTag holds what a struct field's tags say about its stub member.
type fieldTag struct {
	name      string
	pyType    string
	property  bool
	optional  bool
	omitempty bool
	skip      bool
	doc       string
}

// parseFieldTag reads the json, pytype and doc tags of f.
//
//	Name  string    `json:"name"`
//	Score float64   `pytype:"float,property" doc:"relevance score"`
//	Raw   []byte    `pytype:"-"`
func parseFieldTag(f reflect.StructField) fieldTag {
	var tag fieldTag
	if jsonTag, ok := f.Tag.Lookup("json"); ok {
		parts := strings.Split(jsonTag, ",")
		if parts[0] == "-" && len(parts) == 1 {
			tag.skip = true
			return tag
		}
		tag.name = parts[0]
		for _, opt := range parts[1:] {
			if opt == "omitempty" {
				tag.omitempty = true
			}
		}
	}
	if pyTag, ok := f.Tag.Lookup("pytype"); ok {
		if pyTag == "-" {
			tag.skip = true
			return tag
		}
		parts := strings.Split(pyTag, ",")
		tag.pyType = parts[0]
		for _, opt := range parts[1:] {
			switch opt {
			case "property":
				tag.property = true
			case "optional":
				tag.optional = true
			}
		}
	}
	tag.doc = f.Tag.Get("doc")
	if tag.name == "" {
		tag.name = ToSnakeCase(f.Name)
	}
	return tag
}

// FromStruct derives a class descriptor from the exported fields of the
// struct type t. Each field becomes a member; the constructor takes every
// non-property member, required ones first. Pointer and optional fields
// default to None, omitempty fields to `...`.
//
// Field types are resolved through p when the descriptor is converted,
// so types registered with p afterwards are still honoured.
func FromStruct(name string, t reflect.Type, p *pytype.Provider) stubfile.ClassInfo {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if p == nil {
		p = pytype.Default
	}
	if name == "" {
		name = t.Name()
	}

	info := stubfile.ClassInfo{Name: name}
	type ctorArg struct {
		arg      stub.ArgInfo
		optional bool
	}
	var ctor []ctorArg

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := parseFieldTag(f)
		if tag.skip {
			continue
		}

		var src stub.TypeSource
		isPointer := f.Type.Kind() == reflect.Pointer
		switch {
		case tag.pyType != "" && tag.optional:
			src = optionalFunc(pytype.Deferred(tag.pyType))
		case tag.pyType != "":
			src = pytype.Deferred(tag.pyType)
		case tag.optional && !isPointer:
			src = optionalFunc(p.For(f.Type))
		default:
			src = p.For(f.Type)
		}

		info.Members = append(info.Members, stub.MemberInfo{
			Name:     tag.name,
			Type:     src,
			Doc:      tag.doc,
			Property: tag.property,
		})
		if tag.property {
			continue
		}

		a := ctorArg{arg: stub.ArgInfo{Name: tag.name, Type: src}}
		switch {
		case isPointer || tag.optional:
			a.arg.Default, a.optional = "None", true
		case tag.omitempty:
			a.arg.Default, a.optional = "...", true
		}
		ctor = append(ctor, a)
	}

	if len(ctor) > 0 {
		// Python requires parameters without defaults to come first.
		sort.SliceStable(ctor, func(i, j int) bool {
			return !ctor[i].optional && ctor[j].optional
		})
		info.New = &stub.NewInfo{Args: make([]stub.ArgInfo, len(ctor))}
		for i, a := range ctor {
			info.New.Args[i] = a.arg
		}
	}
	return info
}

func optionalFunc(src stub.TypeSource) stub.TypeFunc {
	return func() stub.TypeInfo { return pytype.Optional(src.Resolve()) }
}
