// Package registry collects class registrations per Python module, either
// in code or from TOML and YAML descriptor files, and validates them
// before they reach the renderers.
package registry

import (
	"slices"
	"sync"

	"github.com/teranos/pystub/errors"
	"github.com/teranos/pystub/stubfile"
)

// Registry holds validated class descriptors grouped by module. It is safe
// for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	modules map[string][]stubfile.ClassInfo
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{modules: make(map[string][]stubfile.ClassInfo)}
}

// Add validates info and appends it to module. Classes keep the order
// they were added in.
func (r *Registry) Add(module string, info stubfile.ClassInfo) error {
	if !isModuleName(module) {
		return errors.InvalidDescriptorf("module name %q", module)
	}
	if err := ValidateClass(info); err != nil {
		return errors.Wrapf(err, "module %s", module)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.modules[module] {
		if c.Name == info.Name {
			return errors.Wrapf(errors.ErrDuplicateClass, "%s.%s", module, info.Name)
		}
	}
	r.modules[module] = append(r.modules[module], info)
	return nil
}

// MustAdd is Add for registrations made at init time; it panics on error.
func (r *Registry) MustAdd(module string, info stubfile.ClassInfo) {
	if err := r.Add(module, info); err != nil {
		panic(err)
	}
}

// Modules returns the registered module names in lexical order.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules))
	for m := range r.modules {
		names = append(names, m)
	}
	slices.Sort(names)
	return names
}

// Classes returns a copy of the descriptors registered for module.
func (r *Registry) Classes(module string) []stubfile.ClassInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.modules[module])
}

// Len returns the total number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, classes := range r.modules {
		n += len(classes)
	}
	return n
}

// File converts every class of module and returns the file to render.
// Types are resolved here, once per descriptor field.
func (r *Registry) File(module string) *stubfile.File {
	classes := r.Classes(module)
	f := &stubfile.File{Module: module, Classes: make([]stubfile.ClassDef, len(classes))}
	for i, c := range classes {
		f.Classes[i] = stubfile.NewClassDef(c)
	}
	return f
}
