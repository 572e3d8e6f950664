package module

import (
	"slices"
	"sync"

	str "bizquery/internal/platform/strings"
)

// process wide port registry filled by api.Mount
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores the port set for a module name, replacing any previous one
func Register(name string, ports any) {
	str.MustString(name, "module name")
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// Names lists registered module names, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
