package combinatorics

import (
	"fmt"
	"sort"
	"sync"
)

// optionalStrategies holds strategies compiled in through build tags.
// Files guarded by a build tag add themselves from init.
var optionalStrategies = map[string]func() coreCalculator{}

// CalculatorFactory creates and caches Calculator instances by name.
type CalculatorFactory interface {
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns every registered calculator keyed by name.
	GetAll() map[string]Calculator
}

// DefaultFactory is the standard CalculatorFactory. Calculators are created
// lazily on first Get and cached afterwards. It is safe for concurrent use.
type DefaultFactory struct {
	mu       sync.RWMutex
	creators map[string]func() coreCalculator
	cache    map[string]Calculator
}

// Verify interface compliance.
var _ CalculatorFactory = (*DefaultFactory)(nil)

// NewDefaultFactory returns a factory with the built-in strategies
// ("multiplicative", "recursive", "pascal", "stdlib") and any strategy
// enabled by build tags.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators: map[string]func() coreCalculator{
			"multiplicative": func() coreCalculator { return &Multiplicative{} },
			"recursive":      func() coreCalculator { return &Recursive{} },
			"pascal":         func() coreCalculator { return &Pascal{} },
			"stdlib":         func() coreCalculator { return &Stdlib{} },
		},
		cache: make(map[string]Calculator),
	}
	for name, creator := range optionalStrategies {
		f.creators[name] = creator
	}
	return f
}

// Register adds a strategy under name, replacing any previous registration.
func (f *DefaultFactory) Register(name string, creator func() coreCalculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = creator
	delete(f.cache, name)
}

// Get returns the calculator for name, creating it on first use.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, ok := f.cache[name]; ok {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if calc, ok := f.cache[name]; ok {
		return calc, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	calc := &BinomialCalculator{core: creator(), key: name}
	f.cache[name] = calc
	return calc, nil
}

// List returns the registered algorithm names, sorted.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered calculator.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	all := make(map[string]Calculator)
	for _, name := range f.List() {
		if calc, err := f.Get(name); err == nil {
			all[name] = calc
		}
	}
	return all
}

var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns the process-wide default factory.
func GlobalFactory() *DefaultFactory {
	globalFactoryOnce.Do(func() {
		globalFactory = NewDefaultFactory()
	})
	return globalFactory
}
