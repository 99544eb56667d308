package am

import "github.com/teranos/pystub/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Indent: 0 falls back to the default, negative is invalid
	if c.Indent < 0 {
		return errors.Newf("indent must be >= 0, got %d", c.Indent)
	}
	if c.Indent > 16 {
		return errors.WithHint(
			errors.Newf("indent must be <= 16, got %d", c.Indent),
			"Python stubs conventionally indent by 4 spaces")
	}
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}
	return nil
}
