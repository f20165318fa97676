package cli

import "runnable/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:       f.Workers,
		NameFilter:    f.NameFilter,
		Suite:         f.Suite,
		SuiteDir:      f.SuiteDir,
		FailFast:      f.FailFast,
		OnlyFailed:    f.OnlyFailed,
		RerunFailures: f.RerunFailures,
		Sharded:       f.Sharded,
		OpenFails:     f.OpenFails,
		Detail:        f.Detail,
		MetricsAddr:   f.MetricsAddr,
		LogLevel:      f.LogLevel,
		CronSpec:      f.CronSpec,
		Once:          f.Once,
	}
}
