package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected Workers %d, got %d", DefaultWorkers, cfg.Workers)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected LogLevel %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}

func TestLoad_FlagOverrides(t *testing.T) {
	cfg := Load(Flags{Workers: 9})
	if cfg.Workers != 9 {
		t.Errorf("expected Workers 9, got %d", cfg.Workers)
	}

	cfg = Load(Flags{})
	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected default Workers %d, got %d", DefaultWorkers, cfg.Workers)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Run("workers from environment", func(t *testing.T) {
		t.Setenv("RUNNABLE_WORKERS", "7")
		cfg := New()
		if cfg.Workers != 7 {
			t.Errorf("expected Workers 7, got %d", cfg.Workers)
		}
	})

	t.Run("invalid workers value is ignored", func(t *testing.T) {
		t.Setenv("RUNNABLE_WORKERS", "not-a-number")
		cfg := New()
		if cfg.Workers != DefaultWorkers {
			t.Errorf("expected default Workers %d, got %d", DefaultWorkers, cfg.Workers)
		}
	})

	t.Run("output and log level from environment", func(t *testing.T) {
		t.Setenv("RUNNABLE_OUTPUT_DIR", "artifacts")
		t.Setenv("RUNNABLE_OUTPUT_FILE", "latest.json")
		t.Setenv("RUNNABLE_LOG_LEVEL", "debug")
		cfg := New()
		if cfg.OutputJSONDir != "artifacts" {
			t.Errorf("expected OutputJSONDir artifacts, got %s", cfg.OutputJSONDir)
		}
		if cfg.OutputJSONFile != "latest.json" {
			t.Errorf("expected OutputJSONFile latest.json, got %s", cfg.OutputJSONFile)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("expected LogLevel debug, got %s", cfg.LogLevel)
		}
	})
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = t.TempDir()

	got := cfg.GetOutputPath()
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
	if !strings.HasSuffix(got, filepath.Join(cfg.OutputJSONDir, cfg.OutputJSONFile)) {
		t.Errorf("unexpected output path %s", got)
	}
}

func TestConfig_FlagPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "log level from flag",
			config: &Config{
				LogLevel: "info",
				Flags:    Flags{LogLevel: "debug"},
			},
			expected: "debug",
		},
		{
			name: "log level from config",
			config: &Config{
				LogLevel: "warn",
				Flags:    Flags{},
			},
			expected: "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetLogLevel()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}

	t.Run("metrics addr from flag", func(t *testing.T) {
		cfg := &Config{MetricsAddr: ":9090", Flags: Flags{MetricsAddr: ":8088"}}
		if got := cfg.GetMetricsAddr(); got != ":8088" {
			t.Errorf("expected :8088, got %s", got)
		}
	})

	t.Run("cron spec from config", func(t *testing.T) {
		cfg := &Config{CronSpec: "@every 5m"}
		if got := cfg.GetCronSpec(); got != "@every 5m" {
			t.Errorf("expected @every 5m, got %s", got)
		}
	})
}
