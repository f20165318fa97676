// Package suite loads YAML suite files: named selections of registered
// cases, with optional forced skips.
package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"runnable"
	"runnable/internal/discovery"
)

// SupportedVersion is the suite file version this build understands
const SupportedVersion = 1

// Selection picks cases for a suite, by exact name or by pattern
type Selection struct {
	Name    string `yaml:"name,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
	Skip    string `yaml:"skip,omitempty"`
}

// Suite is a named list of case selections
type Suite struct {
	Version int         `yaml:"version"`
	Name    string      `yaml:"name"`
	Cases   []Selection `yaml:"cases"`
}

// Load reads and validates a suite file. ${VAR} environment references
// are expanded before parsing.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var s Suite
	if err := yaml.Unmarshal([]byte(expanded), &s); err != nil {
		return nil, fmt.Errorf("parse suite %s: %w", path, err)
	}

	if s.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported suite version %d in %s", s.Version, path)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite %s selects no cases", path)
	}
	for i, sel := range s.Cases {
		if sel.Name == "" && sel.Pattern == "" {
			return nil, fmt.Errorf("suite %s: selection %d has neither name nor pattern", path, i)
		}
	}

	return &s, nil
}

// Resolve expands the suite's selections against the registry. Exact
// names must resolve; patterns may select any number of cases. A skip
// set on a selection overrides the case's own skip reason. Duplicate
// selections keep their first mention.
func (s *Suite) Resolve(reg *runnable.Registry, selector *discovery.Selector) ([]runnable.Case, error) {
	seen := make(map[string]bool)
	var cases []runnable.Case

	add := func(c runnable.Case, skip string) {
		if seen[c.Name] {
			return
		}
		seen[c.Name] = true
		if skip != "" {
			c.Skip = skip
		}
		cases = append(cases, c)
	}

	names := reg.Names()
	for _, sel := range s.Cases {
		if sel.Name != "" {
			c, ok := reg.Get(sel.Name)
			if !ok {
				return nil, fmt.Errorf("suite %s: %w: %s", s.Name, runnable.ErrNotFound, sel.Name)
			}
			add(c, sel.Skip)
			continue
		}

		for _, name := range selector.Filter(names, sel.Pattern) {
			if c, ok := reg.Get(name); ok {
				add(c, sel.Skip)
			}
		}
	}

	return cases, nil
}
