package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streammapparr/streammatch/internal/match"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, match.DefaultThreshold, cfg.MatchThreshold)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.Normalization.Quality)
	require.True(t, cfg.Normalization.Regional)
	require.True(t, cfg.Normalization.Geographic)
	require.False(t, cfg.Normalization.Misc)
	require.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
database_dir: /data/channels
match_threshold: 90
round_half_up: true
ignore_tags:
  - "[Dead]"
  - Backup
normalization:
  quality: true
  misc: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/data/channels", cfg.DatabaseDir)
	require.Equal(t, 90, cfg.MatchThreshold)
	require.True(t, cfg.RoundHalfUp)
	require.Equal(t, []string{"[Dead]", "Backup"}, cfg.IgnoreTags)
	require.True(t, cfg.Normalization.Quality)
	require.True(t, cfg.Normalization.Misc)
	// Keys absent from the nested section keep their defaults.
	require.True(t, cfg.Normalization.Regional)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(writeConfig(t, "no_such_option: true\n"))
	require.ErrorIs(t, err, ErrUnknownConfigField)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadNegativeThreshold(t *testing.T) {
	_, err := Load(writeConfig(t, "match_threshold: -5\n"))
	require.ErrorIs(t, err, match.ErrInvalidThreshold)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvDatabaseDir, "/env/channels")
	t.Setenv(EnvThreshold, "70")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvIgnoreTags, "[Dead], Backup ,")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/env/channels", cfg.DatabaseDir)
	require.Equal(t, 70, cfg.MatchThreshold)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"[Dead]", "Backup"}, cfg.IgnoreTags)
}

func TestEnvInvalidIntegerKeepsDefault(t *testing.T) {
	t.Setenv(EnvThreshold, "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, match.DefaultThreshold, cfg.MatchThreshold)
}

func TestOptionsConversion(t *testing.T) {
	cfg := Default()
	cfg.IgnoreTags = []string{"[Dead]"}
	cfg.Normalization.RemoveCinemax = true

	opts := cfg.Options()
	require.True(t, opts.IgnoreQuality)
	require.True(t, opts.IgnoreRegional)
	require.True(t, opts.IgnoreGeographic)
	require.False(t, opts.IgnoreMisc)
	require.True(t, opts.RemoveCinemax)
	require.Equal(t, []string{"[Dead]"}, opts.UserIgnoredTags)

	rc := cfg.ResolverConfig()
	require.Equal(t, match.DefaultThreshold, rc.Threshold)
	require.False(t, rc.RoundHalfUp)
}
