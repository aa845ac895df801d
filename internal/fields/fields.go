// Package fields holds the registry of noise views: small consumers that
// sample a shared table onto a raster so the field can be inspected or
// exported. Concrete views live in subpackages and register from init.
package fields

import (
	"fmt"
	"sort"

	"valnoise/internal/core"
	"valnoise/internal/noise"
)

// View samples a noise table onto a raster.
type View interface {
	Name() string
	Size() core.Size
	// Reset binds the view to t and resamples from the view's origin.
	Reset(t *noise.Table)
	// Step advances the view along its animated axis and resamples.
	Step()
	Raster() *core.Raster
}

// Factory constructs a View using an optional configuration map.
type Factory func(cfg map[string]string) View

var views = map[string]Factory{}

// Register adds a view factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	views[name] = f
}

// Views exposes the registry of available view factories.
func Views() map[string]Factory {
	return views
}

// Names lists registered views in sorted order.
func Names() []string {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the named view.
func New(name string, cfg map[string]string) (View, error) {
	f, ok := views[name]
	if !ok {
		return nil, fmt.Errorf("unknown view %q (have %v)", name, Names())
	}
	return f(cfg), nil
}
