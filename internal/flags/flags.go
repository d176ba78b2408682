// Package flags provides feature flags read from the flags section of the
// config file. Flags are read-only once the registry is built.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/regdesk/internal/log"
)

const (
	// FlagLiveReload applies edits to the config file while regdesk runs.
	FlagLiveReload = "live-reload"

	// FlagMouse enables mouse clicks on tabs, rows and modal buttons.
	FlagMouse = "mouse"
)

// Defaults returns every known flag with its default value.
func Defaults() map[string]bool {
	return map[string]bool{
		FlagLiveReload: true,
		FlagMouse:      true,
	}
}

// Known reports whether name is a flag regdesk understands.
func Known(name string) bool {
	_, ok := Defaults()[name]
	return ok
}

// Registry holds resolved flag values.
type Registry struct {
	flags map[string]bool
}

// New resolves overrides on top of Defaults. Unknown names are kept so All
// reports them, but they never enable anything.
func New(overrides map[string]bool) *Registry {
	resolved := Defaults()
	maps.Copy(resolved, overrides)
	r := &Registry{flags: resolved}
	log.Debug(log.CatConfig, "Feature flags resolved", "flags", r.All())
	return r
}

// Enabled reports whether the named flag is on. Unknown flags and a nil
// registry report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil || !Known(name) {
		return false
	}
	return r.flags[name]
}

// All returns a copy of the resolved flags.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return map[string]bool{}
	}
	return maps.Clone(r.flags)
}

// Unknown returns the sorted names of overrides that match no flag.
func (r *Registry) Unknown() []string {
	if r == nil {
		return nil
	}
	var out []string
	for name := range r.flags {
		if !Known(name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
