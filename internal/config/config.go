// Package config loads tagsfn settings from a YAML file, TAGSFN_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kyusu/tagsfn/internal/localfs"
)

// EnvPrefix is the prefix of environment variables overriding the config.
const EnvPrefix = "TAGSFN"

// Config represents the tagsfn configuration.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`

	// JunkPatterns are extra glob patterns for files that are never touched.
	// Example: []string{"*.tmp", "~$*"}
	JunkPatterns []string `mapstructure:"junk_patterns" yaml:"junk_patterns" validate:"dive,required,glob"`

	// SkipHidden treats every dot file as junk.
	SkipHidden bool `mapstructure:"skip_hidden" yaml:"skip_hidden"`

	// DryRun reports new names without renaming anything.
	DryRun bool `mapstructure:"dry_run" yaml:"dry_run"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":   "log_level",
	"junk":        "junk_patterns",
	"skip-hidden": "skip_hidden",
	"dry-run":     "dry_run",
}

// GetDefaultConfig returns the configuration used when nothing is set.
func GetDefaultConfig() *Config {
	return &Config{
		LogLevel:     "warn",
		JunkPatterns: []string{},
	}
}

// Load loads configuration from file, environment, flags and defaults.
//
// Precedence (highest to lowest):
//  1. Flags explicitly set on the command line
//  2. Environment variables (TAGSFN_*)
//  3. Configuration file
//  4. Default values
//
// An empty path uses GetDefaultConfigPath. A missing file is not an error.
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setupViper(v, path)

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}
	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	// level names are case-insensitive, as in logging.ParseLevel
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func setupViper(v *viper.Viper, path string) {
	defaults := GetDefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("junk_patterns", defaults.JunkPatterns)
	v.SetDefault("skip_hidden", defaults.SkipHidden)
	v.SetDefault("dry_run", defaults.DryRun)

	// Example: TAGSFN_LOG_LEVEL=debug
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = GetDefaultConfigPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Validate checks field constraints.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	}); err != nil {
		return err
	}
	return validate.Struct(cfg)
}

// JunkOptions converts the junk settings for localfs.
func (c *Config) JunkOptions() localfs.JunkOptions {
	return localfs.JunkOptions{
		Patterns:   c.JunkPatterns,
		SkipHidden: c.SkipHidden,
	}
}

// ProbeOptions converts the rename settings for localfs.
func (c *Config) ProbeOptions() localfs.ProbeOptions {
	return localfs.ProbeOptions{DryRun: c.DryRun}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// SaveConfig writes the configuration to path in YAML format.
func SaveConfig(cfg *Config, path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
