// Package am loads pystub's configuration ("I am" how stubs are generated).
package am

// Config represents the pystub configuration
type Config struct {
	// Descriptors are TOML or YAML descriptor files (or glob patterns)
	Descriptors []string `mapstructure:"descriptors" toml:"descriptors" json:"descriptors" yaml:"descriptors"`
	// Output is the directory .pyi files are written to; empty writes to stdout
	Output string `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	// Indent is the number of spaces per nesting level (default: 4)
	Indent int `mapstructure:"indent" toml:"indent" json:"indent" yaml:"indent"`
	// Parallel renders the classes of a module concurrently
	Parallel bool `mapstructure:"parallel" toml:"parallel" json:"parallel" yaml:"parallel"`
	// Header writes the generated-file header (default: true)
	Header bool `mapstructure:"header" toml:"header" json:"header" yaml:"header"`

	Log   LogConfig   `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Watch WatchConfig `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"` // Structured JSON logs instead of console output
}

// WatchConfig configures watch mode
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"` // Quiet period before regenerating (default: 300)
}

// IndentUnit returns the per-level indentation string
func (c *Config) IndentUnit() string {
	n := c.Indent
	if n <= 0 {
		n = DefaultIndent
	}
	unit := make([]byte, n)
	for i := range unit {
		unit[i] = ' '
	}
	return string(unit)
}

// Defaults
const (
	DefaultIndent     = 4
	DefaultDebounceMS = 300
	ConfigFileName    = "pystub.toml"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
