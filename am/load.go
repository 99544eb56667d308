package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/pystub/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the pystub configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := GetViper()
	config, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	if file := v.ConfigFileUsed(); file != "" {
		base := filepath.Dir(file)
		if v.InConfig("descriptors") {
			config.resolveDescriptors(base)
		}
		if v.InConfig("output") {
			config.resolveOutput(base)
		}
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance so callers can bind flags to it
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	config.resolveDescriptors(filepath.Dir(configPath))
	config.resolveOutput(filepath.Dir(configPath))
	return config, nil
}

// UseConfigFile replaces the discovered project config with an explicit file.
func UseConfigFile(configPath string) error {
	v := GetViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	globalConfig = nil
	return nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// PYSTUB_OUTPUT, PYSTUB_WATCH_DEBOUNCE_MS, ...
	v.SetEnvPrefix("PYSTUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if projectConfig := findProjectConfig(); projectConfig != "" {
		v.SetConfigFile(projectConfig)
		v.SetConfigType("toml")
		// Read errors leave the defaults and flags in effect
		_ = v.ReadInConfig()
	}

	viperInstance = v
	return v
}

// findProjectConfig searches for pystub.toml by walking up the directory tree
// Returns the path to the first config file found, or empty string if none found
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}

// resolveDescriptors anchors relative descriptor patterns at base
func (c *Config) resolveDescriptors(base string) {
	for i, d := range c.Descriptors {
		if !filepath.IsAbs(d) {
			c.Descriptors[i] = filepath.Join(base, d)
		}
	}
}

func (c *Config) resolveOutput(base string) {
	if c.Output != "" && !filepath.IsAbs(c.Output) {
		c.Output = filepath.Join(base, c.Output)
	}
}
