package preset

import (
	"fmt"
	"sort"

	"github.com/wildfunctions/autodiff/pkg/expr"
)

// Preset is a named target function for descent runs. Formula is a
// handwritten display string; the tree itself is never rendered.
type Preset struct {
	Name     string
	Formula  string
	Maximize bool
	Build    func() expr.Expr
}

var registry = map[string]Preset{}

// Register adds a preset to the registry.
func Register(p Preset) {
	registry[p.Name] = p
}

// Get returns a preset by name.
func Get(name string) (Preset, error) {
	p, ok := registry[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown target: %s (available: %v)", name, Names())
	}
	return p, nil
}

// Names returns all registered preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
