package adapter

import (
	"fmt"
	"sort"
	"sync"

	forgeerrors "github.com/uiforge/uiforge/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[Framework]Adapter)
)

// Register adds an adapter implementation for the provided framework.
// Adding a target means registering an implementation here; the dispatcher
// never changes.
func Register(framework Framework, a Adapter) error {
	if a == nil {
		return fmt.Errorf("adapter for %s is nil", framework)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[framework]; exists {
		return fmt.Errorf("adapter for %s already registered", framework)
	}

	registry[framework] = a
	return nil
}

// Lookup retrieves the adapter for a framework.
func Lookup(framework Framework) (Adapter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	a, ok := registry[framework]
	if !ok {
		return nil, forgeerrors.NewUnsupportedTargetError(string(framework))
	}

	return a, nil
}

// Frameworks returns the registered framework identifiers in sorted order.
func Frameworks() []Framework {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Framework, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func init() {
	for f, a := range map[Framework]Adapter{
		FrameworkReact:  &ReactAdapter{},
		FrameworkVue:    &VueAdapter{},
		FrameworkSvelte: &SvelteAdapter{},
		FrameworkNextJS: &NextJSAdapter{},
	} {
		if err := Register(f, a); err != nil {
			panic(err)
		}
	}
}
