// Package models holds the built-in model kinds. Each kind pairs an
// unexported descriptor, which declares arguments and constructs
// instances, with an exported instance type carrying typed accessors.
package models

import "github.com/yxonic/dl-boilerplate/internal/model"

// Register adds every built-in kind to r.
func Register(r *model.Registry) {
	r.MustRegister(simpleKind{})
	r.MustRegister(trainerKind{})
}

// DefaultRegistry returns a registry preloaded with the built-in kinds.
func DefaultRegistry() *model.Registry {
	r := model.NewRegistry()
	Register(r)
	return r
}
