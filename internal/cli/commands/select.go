package commands

import (
	"fmt"

	"runnable"
	"runnable/internal/config"
	"runnable/internal/discovery"
	"runnable/internal/logging"
	"runnable/internal/storage"
	"runnable/internal/suite"
)

// selectCases resolves the set of cases to execute from the configured
// flags: the failures of the last run, an explicit suite file, a directory
// of suite files, or a name filter over the whole registry.
func selectCases(
	cfg *config.Config,
	registry *runnable.Registry,
	selector *discovery.Selector,
	scanner *discovery.Scanner,
	st storage.Storage,
) ([]runnable.Case, error) {
	flags := cfg.Flags

	switch {
	case flags.OnlyFailed:
		output, err := st.Load()
		if err != nil {
			return nil, fmt.Errorf("load last run: %w", err)
		}
		var cases []runnable.Case
		for _, failure := range output.Failures {
			c, ok := registry.Get(failure.Name)
			if !ok {
				logging.Warn("Case from last run is no longer registered: %s", failure.Name)
				continue
			}
			cases = append(cases, c)
		}
		return cases, nil

	case flags.Suite != "":
		s, err := suite.Load(flags.Suite)
		if err != nil {
			return nil, err
		}
		return s.Resolve(registry, selector)

	case flags.SuiteDir != "":
		paths, err := scanner.Scan(flags.SuiteDir)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no suite files under %s", flags.SuiteDir)
		}
		seen := make(map[string]bool)
		var cases []runnable.Case
		for _, path := range paths {
			s, err := suite.Load(path)
			if err != nil {
				return nil, err
			}
			resolved, err := s.Resolve(registry, selector)
			if err != nil {
				return nil, err
			}
			for _, c := range resolved {
				if seen[c.Name] {
					continue
				}
				seen[c.Name] = true
				cases = append(cases, c)
			}
		}
		return cases, nil

	default:
		names := selector.Filter(registry.Names(), flags.NameFilter)
		cases := make([]runnable.Case, 0, len(names))
		for _, name := range names {
			if c, ok := registry.Get(name); ok {
				cases = append(cases, c)
			}
		}
		return cases, nil
	}
}
