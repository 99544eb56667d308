package generate

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kylelemons/godebug/diff"

	"github.com/teranos/pystub/errors"
)

// CheckResult holds the result of comparing generated stubs with the
// files already on disk.
type CheckResult struct {
	Missing []string          // relative paths with no file on disk
	Diffs   map[string]string // relative path -> unified-style diff
}

// UpToDate reports whether every generated stub matches its file.
func (r *CheckResult) UpToDate() bool {
	return len(r.Missing) == 0 && len(r.Diffs) == 0
}

// Stale lists every out-of-date path, missing files first.
func (r *CheckResult) Stale() []string {
	stale := slices.Clone(r.Missing)
	return append(stale, slices.Sorted(maps.Keys(r.Diffs))...)
}

// Err returns nil when up to date, otherwise an error wrapping ErrStale.
func (r *CheckResult) Err() error {
	if r.UpToDate() {
		return nil
	}
	return errors.WithDetail(
		errors.Wrapf(errors.ErrStale, "%s", strings.Join(r.Stale(), ", ")),
		"run pystub to regenerate")
}

// Check compares outputs with the files under dir.
func Check(outputs []Output, dir string) (*CheckResult, error) {
	result := &CheckResult{Diffs: make(map[string]string)}
	for _, out := range outputs {
		existing, err := os.ReadFile(filepath.Join(dir, out.Path))
		if os.IsNotExist(err) {
			result.Missing = append(result.Missing, out.Path)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", out.Path)
		}
		if string(existing) != string(out.Content) {
			result.Diffs[out.Path] = diff.Diff(string(existing), string(out.Content))
		}
	}
	return result, nil
}
