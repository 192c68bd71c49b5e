// Package config loads the streammatch configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/streammapparr/streammatch/internal/match"
)

// ErrUnknownConfigField classifies strict YAML parse failures caused by
// unknown keys. Use errors.Is instead of string matching.
var ErrUnknownConfigField = errors.New("unknown config field")

// Config is the effective runtime configuration.
type Config struct {
	// DatabaseDir holds the *_channels.json channel databases.
	DatabaseDir string `yaml:"database_dir"`

	// MatchThreshold is the minimum accepted match score in percent.
	MatchThreshold int `yaml:"match_threshold"`

	// RoundHalfUp switches score conversion from truncation to
	// round-to-nearest.
	RoundHalfUp bool `yaml:"round_half_up"`

	LogLevel string `yaml:"log_level"`

	// IgnoreTags are user-configured tags stripped during normalization.
	IgnoreTags []string `yaml:"ignore_tags"`

	Normalization NormalizationConfig `yaml:"normalization"`
}

// NormalizationConfig mirrors match.Options in file form.
type NormalizationConfig struct {
	Quality             bool `yaml:"quality"`
	Regional            bool `yaml:"regional"`
	Geographic          bool `yaml:"geographic"`
	Misc                bool `yaml:"misc"`
	RemoveCinemax       bool `yaml:"remove_cinemax"`
	RemoveCountryPrefix bool `yaml:"remove_country_prefix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MatchThreshold: match.DefaultThreshold,
		LogLevel:       "info",
		Normalization: NormalizationConfig{
			Quality:    true,
			Regional:   true,
			Geographic: true,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment overrides, then validation.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := parseYAML(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file, keep defaults.
			return nil
		}
		if strings.Contains(err.Error(), "not found in type") {
			return fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
		}
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// Validate enforces the engine's single configuration contract: the match
// threshold must not be negative.
func (c Config) Validate() error {
	if c.MatchThreshold < 0 {
		return fmt.Errorf("%w: %d", match.ErrInvalidThreshold, c.MatchThreshold)
	}
	return nil
}

// Options converts the normalization section into engine options.
func (c Config) Options() match.Options {
	return match.Options{
		IgnoreQuality:       c.Normalization.Quality,
		IgnoreRegional:      c.Normalization.Regional,
		IgnoreGeographic:    c.Normalization.Geographic,
		IgnoreMisc:          c.Normalization.Misc,
		RemoveCinemax:       c.Normalization.RemoveCinemax,
		RemoveCountryPrefix: c.Normalization.RemoveCountryPrefix,
		UserIgnoredTags:     c.IgnoreTags,
	}
}

// ResolverConfig converts the matching section into resolver configuration.
func (c Config) ResolverConfig() match.ResolverConfig {
	return match.ResolverConfig{
		Threshold:   c.MatchThreshold,
		RoundHalfUp: c.RoundHalfUp,
	}
}
