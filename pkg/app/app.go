// Package app maps app identifiers to window content and orchestrates
// launching. The registry replaces a hard-coded switch over app ids: each app
// contributes a definition and the shell contributes a content factory, so
// new apps are registrations, not new branches.
package app

import "fmt"

// Definition is immutable catalog data for one app.
type Definition struct {
	ID           string `yaml:"id"`
	DisplayName  string `yaml:"displayName"`
	DefaultTitle string `yaml:"defaultTitle"`
	// Builtin apps are always launchable; everything else must be
	// installed first.
	Builtin bool `yaml:"builtin"`
}

// Title returns the window title, falling back to the display name.
func (d Definition) Title() string {
	if d.DefaultTitle != "" {
		return d.DefaultTitle
	}
	return d.DisplayName
}

// Registry holds app definitions in registration order.
type Registry struct {
	defs  map[string]Definition
	order []string
}

func NewRegistry() *Registry {
	return &Registry{defs: map[string]Definition{}}
}

// Register adds or replaces a definition. A blank id is rejected.
func (r *Registry) Register(def Definition) error {
	if def.ID == "" {
		return fmt.Errorf("app: definition has no id")
	}
	if _, exists := r.defs[def.ID]; !exists {
		r.order = append(r.order, def.ID)
	}
	r.defs[def.ID] = def
	return nil
}

// Get looks up a definition by id.
func (r *Registry) Get(id string) (Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// All returns definitions in registration order.
func (r *Registry) All() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.defs[id])
	}
	return defs
}
