// Package version reports pystub build information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	Version    string `json:"version" yaml:"version"`
	CommitHash string `json:"commit_hash" yaml:"commit_hash"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	Platform   string `json:"platform" yaml:"platform"`
}

// Get returns the current version information. Binaries installed with
// go install carry their module version instead of ldflags.
func Get() Info {
	info := Info{
		Version:    Version,
		CommitHash: CommitHash,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if info.Version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	return info
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("pystub %s (commit %s)", i.Version, i.Short())
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
