package model

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ArgSet receives a kind's argument declarations. Implementations decide
// what a declaration means: binding a command line flag, recording
// documentation, or prefixing names with a namespace.
type ArgSet interface {
	Int(name string, value int, usage string)
	Float64(name string, value float64, usage string)
	String(name string, value string, usage string)
	Bool(name string, value bool, usage string)

	// MarkRequired marks a previously declared argument as mandatory.
	MarkRequired(name string)
}

// FlagArgs declares arguments as flags on a pflag.FlagSet and remembers
// how to read the parsed values back. Dotted names are legal flag names,
// so namespaced declarations like "l1.foo" become "--l1.foo".
type FlagArgs struct {
	fs       *pflag.FlagSet
	order    []string
	getters  map[string]func() any
	required []string
}

// BindFlags returns a FlagArgs declaring onto fs.
func BindFlags(fs *pflag.FlagSet) *FlagArgs {
	return &FlagArgs{fs: fs, getters: make(map[string]func() any)}
}

func (a *FlagArgs) Int(name string, value int, usage string) {
	p := a.fs.Int(name, value, usage)
	a.bind(name, func() any { return *p })
}

func (a *FlagArgs) Float64(name string, value float64, usage string) {
	p := a.fs.Float64(name, value, usage)
	a.bind(name, func() any { return *p })
}

func (a *FlagArgs) String(name string, value string, usage string) {
	p := a.fs.String(name, value, usage)
	a.bind(name, func() any { return *p })
}

func (a *FlagArgs) Bool(name string, value bool, usage string) {
	p := a.fs.Bool(name, value, usage)
	a.bind(name, func() any { return *p })
}

func (a *FlagArgs) bind(name string, get func() any) {
	if _, ok := a.getters[name]; ok {
		panic(fmt.Sprintf("model: argument %q declared twice", name))
	}
	a.order = append(a.order, name)
	a.getters[name] = get
}

func (a *FlagArgs) MarkRequired(name string) {
	a.required = append(a.required, name)
}

// Values returns every declared argument with its parsed or default value,
// keyed by the full dotted name.
func (a *FlagArgs) Values() map[string]any {
	out := make(map[string]any, len(a.order))
	for _, name := range a.order {
		out[name] = a.getters[name]()
	}
	return out
}

// MissingRequired lists required arguments that were not set on the
// command line, in declaration order.
func (a *FlagArgs) MissingRequired() []string {
	var missing []string
	seen := make(map[string]bool, len(a.required))
	for _, name := range a.required {
		if seen[name] {
			continue
		}
		seen[name] = true
		if f := a.fs.Lookup(name); f != nil && !f.Changed {
			missing = append(missing, name)
		}
	}
	return missing
}
