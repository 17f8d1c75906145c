// Package config loads the YAML configuration of the mdtest conformance runner.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// DefaultName is the config looked up when --config is not given.
// A missing default config is not an error.
const DefaultName = "config_local"

// appDir is the directory under the user config dir searched for named configs.
const appDir = "go-md2html"

// Limits applied by Validate.
const (
	MaxTokenLength   = 255
	MaxEngineName    = 64
	MaxWorkers       = 256
	MaxTimeout       = 10 * time.Minute
	defaultTimeout   = "5s"
	defaultTestsDir  = "tests"
	defaultGFMEngine = "gfm"
)

// Config holds mdtest settings.
type Config struct {
	GFMOAuthToken string   `yaml:"gfmOAuthToken"` // GitHub token for the gfm engine (empty = engine unavailable)
	RunAllDisable []string `yaml:"runAllDisable"` // Engines skipped when running all engines
	Timeout       string   `yaml:"timeout"`       // Per-case engine timeout, Go duration syntax
	TestsDir      string   `yaml:"testsDir"`      // Root of the .md/.out pairs
	Workers       int      `yaml:"workers"`       // Concurrent cases per engine (0 = GOMAXPROCS)
}

// DefaultConfig returns the built-in settings: gfm disabled because it is too
// slow and rate limited, 5s timeout, sequential runs.
func DefaultConfig() *Config {
	return &Config{
		RunAllDisable: []string{defaultGFMEngine},
		Timeout:       defaultTimeout,
		TestsDir:      defaultTestsDir,
		Workers:       1,
	}
}

// TimeoutDuration returns Timeout parsed.
// Call Validate first; an unparsable value yields the default.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		d, _ = time.ParseDuration(defaultTimeout)
	}
	return d
}

// IsDisabled reports whether engine is listed in RunAllDisable.
func (c *Config) IsDisabled(engine string) bool {
	for _, name := range c.RunAllDisable {
		if name == engine {
			return true
		}
	}
	return false
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() *Config {
	cp := *c
	cp.RunAllDisable = append([]string(nil), c.RunAllDisable...)
	if cp.GFMOAuthToken != "" {
		cp.GFMOAuthToken = "********"
	}
	return &cp
}

// Validate checks value ranges and lengths.
func (c *Config) Validate() error {
	if len(c.GFMOAuthToken) > MaxTokenLength {
		return fmt.Errorf("%w: gfmOAuthToken (%d chars, max %d)", ErrInvalidConfig, len(c.GFMOAuthToken), MaxTokenLength)
	}
	for i, name := range c.RunAllDisable {
		if name == "" || len(name) > MaxEngineName {
			return fmt.Errorf("%w: runAllDisable[%d]: engine name must be 1-%d chars", ErrInvalidConfig, i, MaxEngineName)
		}
	}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout: %v", ErrInvalidConfig, err)
		}
		if d <= 0 || d > MaxTimeout {
			return fmt.Errorf("%w: timeout: must be between 0 and %s, got %s", ErrInvalidConfig, MaxTimeout, d)
		}
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidConfig, MaxWorkers, c.Workers)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout == "" {
		cfg.Timeout = defaultTimeout
	}
	if cfg.TestsDir == "" {
		cfg.TestsDir = defaultTestsDir
	}

	return cfg, nil
}

// LoadDefault loads DefaultName if it exists anywhere on the search path and
// falls back to DefaultConfig otherwise.
func LoadDefault() (*Config, error) {
	cfg, err := LoadConfig(DefaultName)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
