// Package config loads dircoll settings from a YAML file, a .env file and
// DIRCOLL_* environment variables, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmgilman/go/collection/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".dircoll.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DIRCOLL_"

// Output formats accepted by the ls command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New(errors.CodeNotFound, "config file not found")

// Config holds the settings shared by every command.
type Config struct {
	Recursive bool     `yaml:"recursive"`
	Exclude   []string `yaml:"exclude,omitempty"`
	LogLevel  string   `yaml:"log_level"`
	Output    string   `yaml:"output"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		Recursive: true,
		LogLevel:  "warn",
		Output:    OutputText,
	}
}

// Load reads the YAML file at path on top of Default. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithContext(ErrConfigNotFound, errors.CodeNotFound, "failed to load config",
				map[string]interface{}{"path": path})
		}
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to read config file",
			map[string]interface{}{"path": path})
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to parse config file",
			map[string]interface{}{"path": path})
	}
	return cfg, nil
}

// Resolve loads configuration the way the command line does. The .env file
// in dir is loaded into the process environment if present. When path is
// empty, FileName in dir is used and a missing file is not an error; an
// explicit path must exist. Environment overrides are applied last and the
// result is validated.
func Resolve(dir, path string) (*Config, error) {
	if err := LoadDotEnv(filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}

	cfg, err := Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, ErrConfigNotFound):
		cfg = Default()
	default:
		return nil, err
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads the named .env files into the process environment.
// Variables that are already set win. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to load env file",
				map[string]interface{}{"path": p})
		}
	}
	return nil
}

// ApplyEnv overrides fields from DIRCOLL_RECURSIVE, DIRCOLL_EXCLUDE
// (comma separated), DIRCOLL_LOG_LEVEL and DIRCOLL_OUTPUT.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "RECURSIVE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid boolean in environment",
				map[string]interface{}{"variable": EnvPrefix + "RECURSIVE", "value": v})
		}
		c.Recursive = b
	}
	if v, ok := lookup(EnvPrefix + "EXCLUDE"); ok && v != "" {
		c.Exclude = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "OUTPUT"); ok && v != "" {
		c.Output = v
	}
	return nil
}

// Validate checks that enumerated fields hold known values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON, OutputYAML:
		c.Output = strings.ToLower(c.Output)
	default:
		return errors.WithContext(
			errors.New(errors.CodeInvalidConfig, "unsupported output format"),
			"output", c.Output)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.WithContext(
			errors.New(errors.CodeInvalidConfig, "unsupported log level"),
			"log_level", c.LogLevel)
	}

	for _, p := range c.Exclude {
		if p == "" {
			return errors.New(errors.CodeInvalidConfig, "exclude patterns must not be empty")
		}
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
