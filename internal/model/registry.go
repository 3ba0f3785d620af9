package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Registry holds the known model kinds, resolving names case-insensitively.
type Registry struct {
	kinds map[string]Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register adds a kind. Names are unique ignoring case.
func (r *Registry) Register(k Kind) error {
	name := strings.ToLower(k.Name())
	if name == "" {
		return errors.New("registry: kind has empty name")
	}
	if _, ok := r.kinds[name]; ok {
		return fmt.Errorf("registry: kind %q already registered", name)
	}
	r.kinds[name] = k
	return nil
}

// MustRegister is Register for program wiring, panicking on conflict.
func (r *Registry) MustRegister(k Kind) {
	if err := r.Register(k); err != nil {
		panic(err)
	}
}

// Lookup finds a kind by name, ignoring case.
func (r *Registry) Lookup(name string) (Kind, bool) {
	k, ok := r.kinds[strings.ToLower(name)]
	return k, ok
}

// Kinds returns the registered kinds sorted by name.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name()) < strings.ToLower(out[j].Name())
	})
	return out
}

// Names returns the registered kind display names sorted alphabetically.
func (r *Registry) Names() []string {
	kinds := r.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name()
	}
	return names
}
