package stub

import (
	"strings"

	"github.com/teranos/pystub/errors"
)

// Receiver is how a method's implicit first parameter is bound.
type Receiver int

const (
	// Instance methods take self.
	Instance Receiver = iota
	// Class methods take cls and carry @classmethod.
	Class
	// Static methods take no receiver and carry @staticmethod.
	Static
)

// ParseReceiver maps a descriptor keyword to a Receiver. The empty string
// means an instance method.
func ParseReceiver(s string) (Receiver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "instance", "self":
		return Instance, nil
	case "class", "classmethod", "cls":
		return Class, nil
	case "static", "staticmethod":
		return Static, nil
	}
	return Instance, errors.Wrapf(errors.ErrUnknownReceiver, "%q", s)
}

func (r Receiver) String() string {
	switch r {
	case Class:
		return "class"
	case Static:
		return "static"
	default:
		return "instance"
	}
}

// decorator returns the decorator line content, empty for instance methods.
func (r Receiver) decorator() string {
	switch r {
	case Class:
		return "@classmethod"
	case Static:
		return "@staticmethod"
	}
	return ""
}

// param returns the implicit first parameter, empty for static methods.
func (r Receiver) param() string {
	switch r {
	case Class:
		return "cls"
	case Static:
		return ""
	}
	return "self"
}
