package models

import (
	"github.com/yxonic/dl-boilerplate/internal/conf"
	"github.com/yxonic/dl-boilerplate/internal/model"
)

// Simple is the smallest model: one integer parameter.
type Simple struct {
	config conf.Record
}

type simpleKind struct{}

func (simpleKind) Name() string { return "Simple" }
func (simpleKind) Doc() string  { return "minimal model with a single parameter" }

func (simpleKind) DeclareArguments(args model.ArgSet) {
	args.Int("foo", 10, "dumb parameter")
}

func (simpleKind) New(config conf.Record) (model.Instance, error) {
	return &Simple{config: config}, nil
}

func (m *Simple) Kind() model.Kind    { return simpleKind{} }
func (m *Simple) Config() conf.Record { return m.config }

// Foo returns the foo parameter.
func (m *Simple) Foo() int {
	v, _ := m.config.Int("foo")
	return v
}
