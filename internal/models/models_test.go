package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yxonic/dl-boilerplate/internal/conf"
	"github.com/yxonic/dl-boilerplate/internal/model"
)

func TestSimpleDefaults(t *testing.T) {
	inst, err := model.Parse(simpleKind{}, nil)
	require.NoError(t, err)

	simple, ok := inst.(*Simple)
	require.True(t, ok)
	assert.Equal(t, 10, simple.Foo())
	assert.Equal(t, "Config(foo=10)", simple.Config().String())
}

func TestSimpleParse(t *testing.T) {
	inst, err := model.Parse(simpleKind{}, []string{"--foo", "3"})
	require.NoError(t, err)
	assert.Equal(t, 3, inst.(*Simple).Foo())
}

func TestTrainerParse(t *testing.T) {
	inst, err := model.Parse(trainerKind{}, []string{
		"--l1.foo", "3", "--l2.foo", "4", "--lr", "0.1",
	})
	require.NoError(t, err)

	trainer, ok := inst.(*Trainer)
	require.True(t, ok)
	assert.Equal(t, 3, trainer.L1().Foo())
	assert.Equal(t, 4, trainer.L2().Foo())
	assert.Equal(t, 0.1, trainer.LR())
}

func TestTrainerDefaults(t *testing.T) {
	inst, err := model.Parse(trainerKind{}, nil)
	require.NoError(t, err)

	trainer := inst.(*Trainer)
	assert.Equal(t, 10, trainer.L1().Foo())
	assert.Equal(t, 10, trainer.L2().Foo())
	assert.Equal(t, 0.1, trainer.LR())
}

func TestTrainerMatchesBuild(t *testing.T) {
	parsed, err := model.Parse(trainerKind{}, []string{"--l1.foo", "3"})
	require.NoError(t, err)
	built, err := model.Build(trainerKind{}, map[string]any{"l1.foo": 3})
	require.NoError(t, err)

	assert.True(t, parsed.Config().Equal(built.Config()),
		"parsed %s, built %s", parsed.Config(), built.Config())
}

func TestTrainerRejectsIncompleteRecord(t *testing.T) {
	_, err := trainerKind{}.New(conf.New(map[string]any{"lr": 0.1}))
	assert.ErrorContains(t, err, `missing "l1" sub-model`)
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, []string{"Simple", "Trainer"}, reg.Names())

	k, ok := reg.Lookup("trainer")
	require.True(t, ok)
	assert.Equal(t, "Trainer", k.Name())
}
