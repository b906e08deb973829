package generator

import (
	"sort"

	"github.com/fauxdoc/fauxdoc/pkg/template"
)

// Descriptor pairs a generator's template-callable name with its
// human-readable description and implementation.
type Descriptor struct {
	Name        string
	Description string
	Func        template.Func
}

// Registry maps generator names to descriptors. Names are unique and
// case-sensitive; registering a name twice keeps the last entry. A
// Registry is mutated only while it is being built and is read-only
// afterwards.
type Registry struct {
	byName map[string]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register adds a generator, replacing any previous entry with the same
// name. Registration always succeeds.
func (r *Registry) Register(name, description string, fn template.Func) {
	r.byName[name] = &Descriptor{Name: name, Description: description, Func: fn}
}

// Get returns the descriptor for an exact name match.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// All returns a snapshot of name -> description. Mutating the returned
// map does not affect the registry.
func (r *Registry) All() map[string]string {
	out := make(map[string]string, len(r.byName))
	for name, d := range r.byName {
		out[name] = d.Description
	}
	return out
}

// Descriptors returns every registered descriptor sorted by name.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.byName))
	for _, d := range r.byName {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
