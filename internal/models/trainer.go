package models

import (
	"fmt"

	"github.com/yxonic/dl-boilerplate/internal/conf"
	"github.com/yxonic/dl-boilerplate/internal/model"
)

// Trainer combines two Simple sub-models with a learning rate. The
// sub-model arguments live under the l1 and l2 namespaces, so the command
// line form is --l1.foo, --l2.foo and --lr.
type Trainer struct {
	config conf.Record
	l1, l2 *Simple
}

type trainerKind struct{}

func (trainerKind) Name() string { return "Trainer" }
func (trainerKind) Doc() string  { return "training setup with two simple sub-models" }

func (trainerKind) DeclareArguments(args model.ArgSet) {
	simpleKind{}.DeclareArguments(model.Namespaced("l1", args))
	simpleKind{}.DeclareArguments(model.Namespaced("l2", args))
	args.Float64("lr", 0.1, "learning rate")
}

func (trainerKind) New(config conf.Record) (model.Instance, error) {
	l1, err := subModel(config, "l1")
	if err != nil {
		return nil, err
	}
	l2, err := subModel(config, "l2")
	if err != nil {
		return nil, err
	}
	return &Trainer{config: config, l1: l1, l2: l2}, nil
}

func subModel(config conf.Record, name string) (*Simple, error) {
	sub, ok := config.Sub(name)
	if !ok {
		return nil, fmt.Errorf("missing %q sub-model configuration", name)
	}
	inst, err := simpleKind{}.New(sub)
	if err != nil {
		return nil, fmt.Errorf("sub-model %q: %w", name, err)
	}
	return inst.(*Simple), nil
}

func (m *Trainer) Kind() model.Kind    { return trainerKind{} }
func (m *Trainer) Config() conf.Record { return m.config }

// L1 returns the first sub-model.
func (m *Trainer) L1() *Simple { return m.l1 }

// L2 returns the second sub-model.
func (m *Trainer) L2() *Simple { return m.l2 }

// LR returns the learning rate.
func (m *Trainer) LR() float64 {
	v, _ := m.config.Float("lr")
	return v
}
