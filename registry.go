package runnable

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered cases keyed by name. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	cases map[string]Case
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cases: make(map[string]Case),
	}
}

// Register makes the case discoverable under its name. It validates the
// case, rejects duplicate names with ErrDuplicateName, and never executes
// the logic.
func (r *Registry) Register(c Case) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %q", err, c.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cases[c.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, c.Name)
	}
	r.cases[c.Name] = c
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// registration from init functions, where a duplicate or invalid case is
// a programming error.
func (r *Registry) MustRegister(c Case) {
	if err := r.Register(c); err != nil {
		panic(fmt.Sprintf("runnable: %v", err))
	}
}

// Get returns the case registered under name.
func (r *Registry) Get(name string) (Case, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cases[name]
	return c, ok
}

// Has reports whether a case is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cases[name]
	return ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.cases))
	for name := range r.cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered cases sorted by name.
func (r *Registry) All() []Case {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cases := make([]Case, 0, len(r.cases))
	for _, c := range r.cases {
		cases = append(cases, c)
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases
}

// Count returns the number of registered cases.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cases)
}

// defaultRegistry backs the package-level functions. Demonstration cases
// register themselves here from init functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a case to the default registry.
func Register(c Case) error {
	return defaultRegistry.Register(c)
}

// MustRegister adds a case to the default registry, panicking on error.
func MustRegister(c Case) {
	defaultRegistry.MustRegister(c)
}

// Get returns a case from the default registry.
func Get(name string) (Case, bool) {
	return defaultRegistry.Get(name)
}

// Has reports whether the default registry holds name.
func Has(name string) bool {
	return defaultRegistry.Has(name)
}

// Names returns the sorted names in the default registry.
func Names() []string {
	return defaultRegistry.Names()
}

// Count returns the number of cases in the default registry.
func Count() int {
	return defaultRegistry.Count()
}
