// Package config loads monover's settings: built-in defaults, an
// optional config file, and MONOVER_* environment overrides, in
// ascending precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Prerelease controls the prerelease suffix appended to alpha builds.
type Prerelease struct {
	// Label precedes the commit count, e.g. "alpha" in "1.2.0-alpha0007".
	Label string `mapstructure:"label"`
	// Width is the minimum digit count of the zero-padded commit count.
	Width int `mapstructure:"width"`
}

// Config holds every tunable setting. Tag naming patterns are derived
// from project names and deliberately not configurable: both tag
// conventions are load-bearing for version resolution.
type Config struct {
	// Changelog is the changelog file name inside each project directory.
	Changelog string `mapstructure:"changelog"`
	// ManifestGlob locates project manifests under the root, as a
	// doublestar pattern.
	ManifestGlob string     `mapstructure:"manifest_glob"`
	Prerelease   Prerelease `mapstructure:"prerelease"`
}

// Load reads configuration. An empty path uses defaults and
// environment only; a non-empty path must name a readable config file.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("changelog", "CHANGELOG.md")
	v.SetDefault("manifest_glob", "**/*.csproj")
	v.SetDefault("prerelease.label", "alpha")
	v.SetDefault("prerelease.width", 4)

	v.SetEnvPrefix("MONOVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}
