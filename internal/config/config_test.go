package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		check   func(*testing.T, *Config)
	}{
		{
			name: "valid config",
			content: `log_level: debug
junk_patterns:
  - "*.tmp"
  - "~$*"
skip_hidden: true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, []string{"*.tmp", "~$*"}, cfg.JunkPatterns)
				assert.True(t, cfg.SkipHidden)
				assert.False(t, cfg.DryRun)
			},
		},
		{
			name:    "partial config keeps defaults",
			content: "dry_run: true\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.Empty(t, cfg.JunkPatterns)
				assert.True(t, cfg.DryRun)
			},
		},
		{
			name:    "log level is case-insensitive",
			content: "log_level: WARN\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "warn", cfg.LogLevel)
			},
		},
		{
			name:    "invalid log level",
			content: "log_level: chatty\n",
			wantErr: "validation failed",
		},
		{
			name:    "invalid junk pattern",
			content: "junk_patterns: [\"[oops\"]\n",
			wantErr: "validation failed",
		},
		{
			name:    "malformed yaml",
			content: "log_level: [\n",
			wantErr: "failed to read config file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content), nil)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_level: info\ndry_run: false\n")
	t.Setenv("TAGSFN_LOG_LEVEL", "error")
	t.Setenv("TAGSFN_DRY_RUN", "true")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.DryRun)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	path := writeConfig(t, "log_level: info\n")
	t.Setenv("TAGSFN_LOG_LEVEL", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	flags.Bool("dry-run", false, "")
	flags.StringSlice("junk", nil, "")
	require.NoError(t, flags.Parse([]string{"--log-level=trace", "--junk=*.bak,*.old"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, []string{"*.bak", "*.old"}, cfg.JunkPatterns)
	assert.False(t, cfg.DryRun, "unset flags must not override")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Config{LogLevel: "info", JunkPatterns: []string{"*.tmp"}, SkipHidden: true, DryRun: true}

	require.NoError(t, SaveConfig(want, path))
	got, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOptions(t *testing.T) {
	cfg := &Config{JunkPatterns: []string{"*.tmp"}, SkipHidden: true, DryRun: true}

	assert.Equal(t, []string{"*.tmp"}, cfg.JunkOptions().Patterns)
	assert.True(t, cfg.JunkOptions().SkipHidden)
	assert.True(t, cfg.ProbeOptions().DryRun)
}

func TestGetDefaultConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("APPDATA", dir)

	assert.Equal(t, filepath.Join(dir, ConfigDir, "config.yaml"), GetDefaultConfigPath())
}
