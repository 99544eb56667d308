package registry

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/pystub/errors"
	"github.com/teranos/pystub/pytype"
	"github.com/teranos/pystub/stub"
	"github.com/teranos/pystub/stubfile"
)

// Descriptor file schema. The same shape is read from TOML and YAML:
//
//	module = "geometry"
//
//	[[classes]]
//	name = "Point"
//	doc = "A 2D point."
//
//	[classes.new]
//	args = [{ name = "x", type = "float" }, { name = "y", type = "float" }]
//
//	[[classes.members]]
//	name = "x"
//	type = "float"
//	property = true
//
//	[[classes.methods]]
//	name = "origin"
//	receiver = "class"
//	return = "Point"
type fileDescriptor struct {
	Module  string            `toml:"module" yaml:"module"`
	Classes []classDescriptor `toml:"classes" yaml:"classes"`
}

type classDescriptor struct {
	Name    string             `toml:"name" yaml:"name"`
	Doc     string             `toml:"doc" yaml:"doc"`
	Bases   []string           `toml:"bases" yaml:"bases"`
	New     *newDescriptor     `toml:"new" yaml:"new"`
	Members []memberDescriptor `toml:"members" yaml:"members"`
	Methods []methodDescriptor `toml:"methods" yaml:"methods"`
}

type newDescriptor struct {
	Args []argDescriptor `toml:"args" yaml:"args"`
}

type memberDescriptor struct {
	Name     string `toml:"name" yaml:"name"`
	Type     string `toml:"type" yaml:"type"`
	Doc      string `toml:"doc" yaml:"doc"`
	Property bool   `toml:"property" yaml:"property"`
}

type methodDescriptor struct {
	Name     string          `toml:"name" yaml:"name"`
	Args     []argDescriptor `toml:"args" yaml:"args"`
	Return   string          `toml:"return" yaml:"return"`
	Doc      string          `toml:"doc" yaml:"doc"`
	Receiver string          `toml:"receiver" yaml:"receiver"`
}

type argDescriptor struct {
	Name    string `toml:"name" yaml:"name"`
	Type    string `toml:"type" yaml:"type"`
	Default string `toml:"default" yaml:"default"`
	Kind    string `toml:"kind" yaml:"kind"`
}

// Format is a descriptor file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.WithHint(
		errors.Newf("unsupported descriptor file %s", path),
		"descriptor files must end in .toml, .yaml or .yml")
}

// LoadFile reads a descriptor file and adds its classes to r.
func (r *Registry) LoadFile(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if err := r.Load(bytes.NewReader(data), format); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	return nil
}

// Load decodes descriptors in the given format and adds them to r. Types
// are kept as deferred sources and parsed only on conversion.
func (r *Registry) Load(in io.Reader, format Format) error {
	var desc fileDescriptor
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(in).Decode(&desc); err != nil {
			return errors.Wrap(err, "failed to decode TOML descriptors")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(in)
		dec.KnownFields(true)
		if err := dec.Decode(&desc); err != nil && err != io.EOF {
			return errors.Wrap(err, "failed to decode YAML descriptors")
		}
	default:
		return errors.Newf("unknown descriptor format %q", format)
	}

	for _, c := range desc.Classes {
		info, err := c.classInfo()
		if err != nil {
			return err
		}
		if err := r.Add(desc.Module, info); err != nil {
			return err
		}
	}
	return nil
}

func (c classDescriptor) classInfo() (stubfile.ClassInfo, error) {
	info := stubfile.ClassInfo{Name: c.Name, Doc: c.Doc}
	for _, b := range c.Bases {
		info.Bases = append(info.Bases, pytype.Deferred(b))
	}
	for _, m := range c.Members {
		if m.Type == "" {
			return info, errors.InvalidDescriptorf("class %s: member %s has no type", c.Name, m.Name)
		}
		info.Members = append(info.Members, stub.MemberInfo{
			Name:     m.Name,
			Type:     pytype.Deferred(m.Type),
			Doc:      m.Doc,
			Property: m.Property,
		})
	}
	if c.New != nil {
		args, err := argInfos(c.New.Args)
		if err != nil {
			return info, errors.Wrapf(err, "class %s: __new__", c.Name)
		}
		info.New = &stub.NewInfo{Args: args}
	}
	for _, m := range c.Methods {
		recv, err := stub.ParseReceiver(m.Receiver)
		if err != nil {
			return info, errors.WithHint(
				errors.Wrapf(err, "class %s: method %s", c.Name, m.Name),
				"receiver must be one of: instance, class, static")
		}
		args, err := argInfos(m.Args)
		if err != nil {
			return info, errors.Wrapf(err, "class %s: method %s", c.Name, m.Name)
		}
		method := stub.MethodInfo{
			Name:     m.Name,
			Args:     args,
			Doc:      m.Doc,
			Receiver: recv,
		}
		if m.Return != "" {
			method.Return = pytype.Deferred(m.Return)
		}
		info.Methods = append(info.Methods, method)
	}
	return info, nil
}

func argInfos(descs []argDescriptor) ([]stub.ArgInfo, error) {
	args := make([]stub.ArgInfo, len(descs))
	for i, a := range descs {
		if a.Type == "" {
			return nil, errors.InvalidDescriptorf("argument %s has no type", a.Name)
		}
		kind, err := parseArgKind(a.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %s", a.Name)
		}
		args[i] = stub.ArgInfo{
			Name:    a.Name,
			Type:    pytype.Deferred(a.Type),
			Default: a.Default,
			Kind:    kind,
		}
	}
	return args, nil
}

func parseArgKind(s string) (stub.ArgKind, error) {
	switch s {
	case "", "positional":
		return stub.Positional, nil
	case "*", "args", "var_positional":
		return stub.VarPositional, nil
	case "**", "kwargs", "var_keyword":
		return stub.VarKeyword, nil
	}
	return stub.Positional, errors.InvalidDescriptorf("argument kind %q", s)
}
