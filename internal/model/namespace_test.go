package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yxonic/dl-boilerplate/internal/conf"
)

// boxKind embeds widgetKind's arguments under the "w" namespace next to
// its own.
type boxKind struct{}

func (boxKind) Name() string { return "Box" }
func (boxKind) Doc() string  { return "widget in a box" }

func (boxKind) DeclareArguments(args ArgSet) {
	widgetKind{}.DeclareArguments(Namespaced("w", args))
	args.Float64("scale", 1.0, "output scale")
}

func (boxKind) New(config conf.Record) (Instance, error) {
	return &widget{config: config}, nil
}

func TestNamespacedPrefixesDeclarations(t *testing.T) {
	docs := Describe(boxKind{})
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"w.x", "w.y", "w.tag", "scale"}, names)
	assert.True(t, docs[0].Required, "required marker must carry the prefix")
	assert.False(t, docs[3].Required)
}

func TestNamespacedComposes(t *testing.T) {
	d := &docArgs{index: make(map[string]int)}
	inner := Namespaced("b", Namespaced("a", d))
	inner.Int("foo", 1, "")
	require.Len(t, d.docs, 1)
	assert.Equal(t, "a.b.foo", d.docs[0].Name)
}

func TestNamespacedParse(t *testing.T) {
	inst, err := Parse(boxKind{}, []string{"--w.x", "5", "--scale", "2.5"})
	require.NoError(t, err)

	sub, ok := inst.Config().Sub("w")
	require.True(t, ok, "namespaced arguments nest under their prefix")
	x, _ := sub.Int("x")
	y, _ := sub.Int("y")
	assert.Equal(t, 5, x)
	assert.Equal(t, 10, y)

	scale, ok := inst.Config().Float("scale")
	require.True(t, ok)
	assert.Equal(t, 2.5, scale)
}

func TestNamespacedRequiredMessage(t *testing.T) {
	_, err := Parse(boxKind{}, nil)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "the following arguments are required: --w.x", perr.Error())
}

func TestNamespacedRejectsBadNames(t *testing.T) {
	d := &docArgs{index: make(map[string]int)}
	assert.Panics(t, func() { Namespaced("", d) })
	assert.Panics(t, func() { Namespaced("a.b", d) })
}
