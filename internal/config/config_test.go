package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/collection/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, FileName, "exclude:\n  - \"*.tmp\"\n  - .git\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.Recursive)
		assert.Equal(t, []string{"*.tmp", ".git"}, cfg.Exclude)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, OutputText, cfg.Output)
	})

	t.Run("full file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, FileName, "recursive: false\nlog_level: debug\noutput: json\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.False(t, cfg.Recursive)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, OutputJSON, cfg.Output)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), FileName))
		assert.True(t, errors.Is(err, ErrConfigNotFound))
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, FileName, "recursive: [not a bool\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		"DIRCOLL_RECURSIVE": "false",
		"DIRCOLL_EXCLUDE":   "*.tmp, build ,,",
		"DIRCOLL_LOG_LEVEL": "info",
		"DIRCOLL_OUTPUT":    "yaml",
	}))
	require.NoError(t, err)
	assert.False(t, cfg.Recursive)
	assert.Equal(t, []string{"*.tmp", "build"}, cfg.Exclude)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, OutputYAML, cfg.Output)

	t.Run("empty values are ignored", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, cfg.ApplyEnv(mapLookup(map[string]string{"DIRCOLL_OUTPUT": ""})))
		assert.Equal(t, OutputText, cfg.Output)
	})

	t.Run("bad boolean", func(t *testing.T) {
		cfg := Default()
		err := cfg.ApplyEnv(mapLookup(map[string]string{"DIRCOLL_RECURSIVE": "sometimes"}))
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "upper case output", mutate: func(c *Config) { c.Output = "JSON" }},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "xml" }, wantErr: true},
		{name: "unknown level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "empty pattern", mutate: func(c *Config) { c.Exclude = []string{""} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("no files", func(t *testing.T) {
		t.Setenv("DIRCOLL_OUTPUT", "")
		cfg, err := Resolve(t.TempDir(), "")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Resolve(dir, filepath.Join(dir, "custom.yaml"))
		assert.True(t, errors.Is(err, ErrConfigNotFound))
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, FileName, "output: json\n")
		t.Setenv("DIRCOLL_OUTPUT", "yaml")

		cfg, err := Resolve(dir, "")
		require.NoError(t, err)
		assert.Equal(t, OutputYAML, cfg.Output)
	})

	t.Run("dotenv fills the environment", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "DIRCOLL_LOG_LEVEL=debug\n")
		// Registers cleanup so the value loaded from .env does not leak.
		t.Setenv("DIRCOLL_LOG_LEVEL", "")
		require.NoError(t, os.Unsetenv("DIRCOLL_LOG_LEVEL"))

		cfg, err := Resolve(dir, "")
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("invalid result", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, FileName, "output: html\n")
		t.Setenv("DIRCOLL_OUTPUT", "")

		_, err := Resolve(dir, "")
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}
