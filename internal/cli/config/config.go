// Package config loads CLI configuration for mosql.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all CLI configuration options.
type Config struct {
	Dialect string `koanf:"dialect"`
	Format  string `koanf:"format"`
	Verbose bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDialect = "ansi"
	DefaultFormat  = "json"
)

// configFileUsed records the file Load read, for verbose output.
var configFileUsed string

// GetConfigFileUsed returns the path of the config file that was loaded.
func GetConfigFileUsed() string {
	return configFileUsed
}

// Load builds the configuration from defaults, an optional YAML file,
// MOSQL_* environment variables, and command-line flags, in rising
// precedence.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"dialect": DefaultDialect,
		"format":  DefaultFormat,
		"verbose": false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	paths := []string{cfgFile}
	if cfgFile == "" {
		paths = []string{"mosql.yaml", "mosql.yml", ".mosql.yaml", ".mosql.yml"}
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if cfgFile != "" {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
			continue
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		configFileUsed = path
		break
	}

	if err := k.Load(env.Provider("MOSQL_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "MOSQL_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
