package am

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("descriptors", []string{})
	v.SetDefault("output", "")
	v.SetDefault("indent", DefaultIndent)
	v.SetDefault("parallel", false)
	v.SetDefault("header", true)
	v.SetDefault("log.json", false)
	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
}
