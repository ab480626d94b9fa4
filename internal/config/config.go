// Package config loads the optional .pbxsort.json configuration file.
// The file may extend the built-in allow-lists but can never unprotect the
// link-order-sensitive PBXFrameworksBuildPhase section.
package config

import (
	"github.com/spf13/viper"

	"pbxsort/internal/pbxproj"
)

// Config represents the complete pbxsort configuration
type Config struct {
	Version          int      `json:"version" mapstructure:"version"`
	CaseInsensitive  bool     `json:"caseInsensitive" mapstructure:"caseInsensitive"`
	ContinueOnError  bool     `json:"continueOnError" mapstructure:"continueOnError"`
	KnownFiles       []string `json:"knownFiles" mapstructure:"knownFiles"`
	SortableSections []string `json:"sortableSections" mapstructure:"sortableSections"`

	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Version:         1,
		CaseInsensitive: false,
		ContinueOnError: true,
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <dir>/.pbxsort.json
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("version", 1)
	v.SetDefault("continueOnError", true)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	// Configure viper
	v.SetConfigName(".pbxsort")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	for _, kind := range c.SortableSections {
		if kind == pbxproj.ProtectedSection {
			return &ConfigError{
				Field:   "sortableSections",
				Message: pbxproj.ProtectedSection + " is order-sensitive and cannot be made sortable",
			}
		}
	}
	return nil
}

// EffectiveKnownFiles returns the built-in extension-less file names extended
// by the config. Config entries add to the defaults, never replace them.
func (c *Config) EffectiveKnownFiles() []string {
	return appendUnique(pbxproj.DefaultKnownFiles, c.KnownFiles)
}

// EffectiveSortableSections returns the built-in sortable section kinds
// extended by the config.
func (c *Config) EffectiveSortableSections() []string {
	return appendUnique(pbxproj.DefaultSortableSections, c.SortableSections)
}

func appendUnique(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(base)+len(extra))
	for _, s := range base {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range extra {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
