package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Workers int

	// Observability settings
	LogLevel    string
	MetricsAddr string

	// Soak settings
	CronSpec string

	// Paths to ignore when scanning for suite files
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Workers       int
	NameFilter    string
	Suite         string
	SuiteDir      string
	FailFast      bool
	OnlyFailed    bool
	RerunFailures bool
	Sharded       bool
	OpenFails     bool
	Detail        bool
	MetricsAddr   string
	LogLevel      string
	CronSpec      string
	Once          string
}

// New creates a new Config with defaults, then applies .env and
// RUNNABLE_* environment overrides. Flags are applied later, by the
// command layer, and take precedence over both.
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Workers:        DefaultWorkers,
		LogLevel:       DefaultLogLevel,
		CronSpec:       DefaultCronSpec,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	cfg.applyEnv()
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	// Apply flag overrides
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}

	return cfg
}

// applyEnv loads .env when present and applies RUNNABLE_* overrides.
func (c *Config) applyEnv() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if v := os.Getenv("RUNNABLE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Workers = n
		}
	}
	if v := os.Getenv("RUNNABLE_OUTPUT_DIR"); v != "" {
		c.OutputJSONDir = v
	}
	if v := os.Getenv("RUNNABLE_OUTPUT_FILE"); v != "" {
		c.OutputJSONFile = v
	}
	if v := os.Getenv("RUNNABLE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("RUNNABLE_METRICS_ADDR"); v != "" {
		c.MetricsAddr = v
	}
	if v := os.Getenv("RUNNABLE_CRON"); v != "" {
		c.CronSpec = v
	}
}

// GetOutputPath returns the full path to the results JSON file.
// Resolves to an absolute path so run and fails always read/write the same
// file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetLogLevel returns the logging level, using the flag if provided
func (c *Config) GetLogLevel() string {
	if c.Flags.LogLevel != "" {
		return c.Flags.LogLevel
	}
	return c.LogLevel
}

// GetMetricsAddr returns the metrics listen address, using the flag if provided
func (c *Config) GetMetricsAddr() string {
	if c.Flags.MetricsAddr != "" {
		return c.Flags.MetricsAddr
	}
	return c.MetricsAddr
}

// GetCronSpec returns the soak schedule, using the flag if provided
func (c *Config) GetCronSpec() string {
	if c.Flags.CronSpec != "" {
		return c.Flags.CronSpec
	}
	return c.CronSpec
}
