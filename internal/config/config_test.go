package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mdtest.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GFMOAuthToken != "" {
		t.Errorf("GFMOAuthToken = %q, want empty", cfg.GFMOAuthToken)
	}
	if !cfg.IsDisabled("gfm") {
		t.Error("gfm should be disabled by default")
	}
	if cfg.IsDisabled("pandoc") {
		t.Error("pandoc should not be disabled by default")
	}
	if cfg.TimeoutDuration() != 5*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 5s", cfg.TimeoutDuration())
	}
	if cfg.TestsDir != "tests" {
		t.Errorf("TestsDir = %q, want %q", cfg.TestsDir, "tests")
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero workers means auto", func(c *Config) { c.Workers = 0 }, false},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
		{"too many workers", func(c *Config) { c.Workers = MaxWorkers + 1 }, true},
		{"unparsable timeout", func(c *Config) { c.Timeout = "soon" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = "0s" }, true},
		{"huge timeout", func(c *Config) { c.Timeout = "1h" }, true},
		{"empty timeout falls back", func(c *Config) { c.Timeout = "" }, false},
		{"empty engine name", func(c *Config) { c.RunAllDisable = []string{""} }, true},
		{"long token", func(c *Config) { c.GFMOAuthToken = strings.Repeat("x", MaxTokenLength+1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestTimeoutDuration_FallsBackOnGarbage(t *testing.T) {
	cfg := &Config{Timeout: "garbage"}
	if cfg.TimeoutDuration() != 5*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 5s", cfg.TimeoutDuration())
	}
}

func TestRedacted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GFMOAuthToken = "ghp_secret"

	r := cfg.Redacted()
	if strings.Contains(r.GFMOAuthToken, "secret") {
		t.Errorf("Redacted() leaked token: %q", r.GFMOAuthToken)
	}
	if cfg.GFMOAuthToken != "ghp_secret" {
		t.Error("Redacted() modified the original")
	}

	r.RunAllDisable[0] = "changed"
	if cfg.RunAllDisable[0] != "gfm" {
		t.Error("Redacted() shares the RunAllDisable slice")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "gfmOAuthToken: abc\nrunAllDisable: []\ntimeout: 30s\nworkers: 4\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.GFMOAuthToken != "abc" {
			t.Errorf("GFMOAuthToken = %q, want %q", cfg.GFMOAuthToken, "abc")
		}
		if cfg.IsDisabled("gfm") {
			t.Error("explicit empty runAllDisable should enable gfm")
		}
		if cfg.TimeoutDuration() != 30*time.Second {
			t.Errorf("TimeoutDuration() = %v, want 30s", cfg.TimeoutDuration())
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
		if cfg.TestsDir != "tests" {
			t.Errorf("TestsDir = %q, want default", cfg.TestsDir)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "testsDir: suite\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.TestsDir != "suite" {
			t.Errorf("TestsDir = %q, want %q", cfg.TestsDir, "suite")
		}
		if !cfg.IsDisabled("gfm") {
			t.Error("gfm should stay disabled")
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "timout: 3s\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeConfig(t, "workers: -3\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)

	if err := os.WriteFile("ci.yml", []byte("workers: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("ci")
	if err != nil {
		t.Fatalf("LoadConfig(\"ci\") error = %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}

	_, err = LoadConfig("absent")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "absent.yaml") {
		t.Errorf("error should list searched paths, got %v", err)
	}
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() without file error = %v", err)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want default 1", cfg.Workers)
	}

	if err := os.WriteFile(DefaultName+".yaml", []byte("workers: 8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() with file error = %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
}
