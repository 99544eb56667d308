// Package generate drives stub generation: it loads descriptor files into a
// registry, renders one .pyi file per module and writes, checks or watches
// the results.
package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/teranos/pystub/am"
	"github.com/teranos/pystub/errors"
	"github.com/teranos/pystub/logger"
	"github.com/teranos/pystub/registry"
)

// Options control how module files are rendered.
type Options struct {
	Indent   string
	Parallel bool
	NoHeader bool
}

// OptionsFrom derives render options from the loaded configuration.
func OptionsFrom(cfg *am.Config) Options {
	return Options{
		Indent:   cfg.IndentUnit(),
		Parallel: cfg.Parallel,
		NoHeader: !cfg.Header,
	}
}

// Output is one rendered module file.
type Output struct {
	Module  string
	Path    string // relative, e.g. "geometry/shapes.pyi"
	Content []byte
}

// ModulePath maps a dotted module name to its stub file path.
func ModulePath(module string) string {
	return filepath.Join(strings.Split(module, ".")...) + ".pyi"
}

// ExpandDescriptors resolves glob patterns into a sorted, de-duplicated
// list of descriptor files. A pattern without glob characters must name an
// existing file.
func ExpandDescriptors(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid descriptor pattern %q", pattern)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err != nil {
				return nil, errors.WithHint(
					errors.Wrapf(err, "descriptor %s", pattern),
					"set descriptors in pystub.toml or pass --descriptors")
			}
			matches = []string{pattern}
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// LoadRegistry loads every descriptor file into a fresh registry.
func LoadRegistry(paths []string) (*registry.Registry, error) {
	reg := registry.New()
	for _, path := range paths {
		if err := reg.LoadFile(path); err != nil {
			return nil, err
		}
		logger.Debugw("Loaded descriptors", logger.FieldPath, path)
	}
	return reg, nil
}

// Render renders every module of reg in module order.
func Render(reg *registry.Registry, opts Options) ([]Output, error) {
	modules := reg.Modules()
	outputs := make([]Output, 0, len(modules))
	for _, module := range modules {
		f := reg.File(module)
		f.Indent = opts.Indent
		f.Parallel = opts.Parallel
		f.NoHeader = opts.NoHeader

		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return nil, errors.Wrapf(err, "render module %s", module)
		}
		outputs = append(outputs, Output{
			Module:  module,
			Path:    ModulePath(module),
			Content: buf.Bytes(),
		})
		logger.Debugw("Rendered module",
			logger.FieldModule, module,
			logger.FieldCount, len(f.Classes))
	}
	return outputs, nil
}

// Build expands the configured descriptors, loads them and renders all modules.
func Build(cfg *am.Config) ([]Output, error) {
	start := time.Now()
	paths, err := ExpandDescriptors(cfg.Descriptors)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.WithHint(
			errors.New("no descriptor files configured"),
			"set descriptors in pystub.toml or pass --descriptors")
	}
	reg, err := LoadRegistry(paths)
	if err != nil {
		return nil, err
	}
	outputs, err := Render(reg, OptionsFrom(cfg))
	if err != nil {
		return nil, err
	}
	logger.Infow("Generated stubs",
		logger.FieldCount, len(outputs),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return outputs, nil
}

// Write writes outputs under dir, creating package directories as needed.
// Files whose content is unchanged are left untouched.
func Write(outputs []Output, dir string) error {
	for _, out := range outputs {
		path := filepath.Join(dir, out.Path)
		if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, out.Content) {
			logger.Debugw("Stub unchanged", logger.FieldPath, path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), am.DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", path)
		}
		if err := os.WriteFile(path, out.Content, am.DefaultFilePermissions); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		logger.Infow("Wrote stub", logger.FieldModule, out.Module, logger.FieldPath, path)
	}
	return nil
}
