package model

// FlagDoc documents one declared argument of a kind.
type FlagDoc struct {
	Name     string
	Type     string
	Default  any
	Usage    string
	Required bool
}

type docArgs struct {
	docs  []FlagDoc
	index map[string]int
}

func (d *docArgs) add(name, typ string, def any, usage string) {
	d.index[name] = len(d.docs)
	d.docs = append(d.docs, FlagDoc{Name: name, Type: typ, Default: def, Usage: usage})
}

func (d *docArgs) Int(name string, value int, usage string) {
	d.add(name, "int", value, usage)
}

func (d *docArgs) Float64(name string, value float64, usage string) {
	d.add(name, "float", value, usage)
}

func (d *docArgs) String(name string, value string, usage string) {
	d.add(name, "string", value, usage)
}

func (d *docArgs) Bool(name string, value bool, usage string) {
	d.add(name, "bool", value, usage)
}

func (d *docArgs) MarkRequired(name string) {
	if i, ok := d.index[name]; ok {
		d.docs[i].Required = true
	}
}

// Describe lists the arguments k declares, in declaration order with full
// dotted names.
func Describe(k Kind) []FlagDoc {
	d := &docArgs{index: make(map[string]int)}
	k.DeclareArguments(d)
	return d.docs
}
