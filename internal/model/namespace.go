package model

import (
	"fmt"
	"strings"
)

// Namespaced wraps an ArgSet so every declaration gains a "namespace."
// prefix. Wrappers compose: declaring "foo" through Namespaced("inner",
// Namespaced("outer", args)) yields "outer.inner.foo" on args. This lets a
// kind embed another kind's arguments under a distinct prefix.
//
// The namespace must be a non-empty token without dots. Nesting comes from
// wrapping again, not from dots in the namespace.
func Namespaced(namespace string, args ArgSet) ArgSet {
	if namespace == "" || strings.Contains(namespace, ".") {
		panic(fmt.Sprintf("model: invalid namespace %q", namespace))
	}
	return nsArgs{prefix: namespace + ".", next: args}
}

type nsArgs struct {
	prefix string
	next   ArgSet
}

func (n nsArgs) Int(name string, value int, usage string) {
	n.next.Int(n.prefix+name, value, usage)
}

func (n nsArgs) Float64(name string, value float64, usage string) {
	n.next.Float64(n.prefix+name, value, usage)
}

func (n nsArgs) String(name string, value string, usage string) {
	n.next.String(n.prefix+name, value, usage)
}

func (n nsArgs) Bool(name string, value bool, usage string) {
	n.next.Bool(n.prefix+name, value, usage)
}

func (n nsArgs) MarkRequired(name string) {
	n.next.MarkRequired(n.prefix + name)
}
