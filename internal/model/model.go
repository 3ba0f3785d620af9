package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/yxonic/dl-boilerplate/internal/conf"
)

// Kind describes one registered model type. A kind is stateless: it
// declares the arguments its configuration is built from and constructs
// instances from finished records.
type Kind interface {
	// Name is the display name, e.g. "Simple". Lookup ignores case.
	Name() string

	// Doc is a one line description shown in listings.
	Doc() string

	// DeclareArguments declares the kind's configuration arguments.
	DeclareArguments(args ArgSet)

	// New constructs an instance from a complete configuration record.
	New(config conf.Record) (Instance, error)
}

// Instance is a configured model. The record it carries is immutable and
// fully resolved, nested sub-model configs included.
type Instance interface {
	Kind() Kind
	Config() conf.Record
}

// ParseError reports command line arguments a kind could not accept. The
// CLI maps it to a usage failure instead of a runtime one.
type ParseError struct {
	Kind string
	msg  string
}

func (e *ParseError) Error() string { return e.msg }

func newParseError(kind, msg string) *ParseError {
	return &ParseError{Kind: kind, msg: msg}
}

// Parse builds an instance of k from command line arguments. Parsing is
// isolated: errors come back as *ParseError rather than terminating the
// process, and nothing is printed. Declared arguments not present in args
// keep their defaults, dotted names are expanded into nested records, and
// missing required arguments are reported together.
func Parse(k Kind, args []string) (Instance, error) {
	fs := pflag.NewFlagSet(strings.ToLower(k.Name()), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fa := BindFlags(fs)
	k.DeclareArguments(fa)

	if err := fs.Parse(args); err != nil {
		return nil, newParseError(k.Name(), err.Error())
	}
	return FromFlags(k, fa)
}

// FromFlags finishes instance construction after fa's flag set was parsed
// elsewhere, typically by the CLI framework owning the flag set. It
// applies the same required and leftover-argument checks as Parse.
func FromFlags(k Kind, fa *FlagArgs) (Instance, error) {
	if missing := fa.MissingRequired(); len(missing) > 0 {
		for i, name := range missing {
			missing[i] = "--" + name
		}
		return nil, newParseError(k.Name(), "the following arguments are required: "+strings.Join(missing, ", "))
	}
	if rest := fa.fs.Args(); len(rest) > 0 {
		return nil, newParseError(k.Name(), "unrecognized arguments: "+strings.Join(rest, " "))
	}
	return build(k, fa.Values())
}

// Build constructs an instance of k from keyword values. Declared
// arguments missing from kwargs take their defaults, except required ones,
// which must be present. Keys not declared by the kind pass through into
// the record. Dotted keys expand the same way Parse expands flag names, so
// Build(k, {"l1.foo": 3}) and Parse(k, ["--l1.foo", "3"]) produce equal
// configs.
func Build(k Kind, kwargs map[string]any) (Instance, error) {
	values := make(map[string]any, len(kwargs))
	var missing []string
	for _, d := range Describe(k) {
		v, ok := kwargs[d.Name]
		if !ok {
			if d.Required {
				missing = append(missing, "--"+d.Name)
				continue
			}
			v = d.Default
		}
		values[d.Name] = v
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}
	for key, v := range kwargs {
		if _, ok := values[key]; !ok {
			values[key] = v
		}
	}
	return build(k, values)
}

func build(k Kind, values map[string]any) (Instance, error) {
	expanded, err := conf.Unflatten(values)
	if err != nil {
		return nil, fmt.Errorf("expanding %s configuration: %w", strings.ToLower(k.Name()), err)
	}
	inst, err := k.New(conf.New(expanded))
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", strings.ToLower(k.Name()), err)
	}
	return inst, nil
}
