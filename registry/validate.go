package registry

import (
	"strings"
	"unicode"

	"github.com/teranos/pystub/errors"
	"github.com/teranos/pystub/stub"
	"github.com/teranos/pystub/stubfile"
)

// pythonKeywords are reserved words that cannot be used as identifiers
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// isIdentifier reports whether s is a valid, non-keyword Python identifier.
func isIdentifier(s string) bool {
	if s == "" || pythonKeywords[s] {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// isModuleName reports whether s is a dotted sequence of identifiers.
func isModuleName(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !isIdentifier(part) {
			return false
		}
	}
	return true
}

// ValidateClass checks the structural rules every descriptor must meet
// before conversion: identifier names, typed members and arguments, known
// receiver kinds and unique parameter names.
func ValidateClass(info stubfile.ClassInfo) error {
	if !isIdentifier(info.Name) {
		return errors.InvalidDescriptorf("class name %q", info.Name)
	}
	for _, b := range info.Bases {
		if b == nil {
			return errors.InvalidDescriptorf("class %s: base without type", info.Name)
		}
	}
	for _, m := range info.Members {
		if !isIdentifier(m.Name) {
			return errors.InvalidDescriptorf("class %s: member name %q", info.Name, m.Name)
		}
		if m.Type == nil {
			return errors.InvalidDescriptorf("class %s: member %s has no type", info.Name, m.Name)
		}
	}
	if info.New != nil {
		if err := validateArgs(info.New.Args); err != nil {
			return errors.Wrapf(err, "class %s: __new__", info.Name)
		}
	}
	for _, m := range info.Methods {
		if !isIdentifier(m.Name) {
			return errors.InvalidDescriptorf("class %s: method name %q", info.Name, m.Name)
		}
		if m.Receiver < stub.Instance || m.Receiver > stub.Static {
			return errors.Wrapf(errors.ErrUnknownReceiver, "class %s: method %s: %d", info.Name, m.Name, int(m.Receiver))
		}
		if err := validateArgs(m.Args); err != nil {
			return errors.Wrapf(err, "class %s: method %s", info.Name, m.Name)
		}
	}
	return nil
}

func validateArgs(args []stub.ArgInfo) error {
	seen := make(map[string]bool, len(args))
	for _, a := range args {
		if !isIdentifier(a.Name) || a.Name == "self" || a.Name == "cls" {
			return errors.InvalidDescriptorf("argument name %q", a.Name)
		}
		if seen[a.Name] {
			return errors.InvalidDescriptorf("duplicate argument %q", a.Name)
		}
		seen[a.Name] = true
		if a.Type == nil {
			return errors.InvalidDescriptorf("argument %s has no type", a.Name)
		}
	}
	return nil
}
