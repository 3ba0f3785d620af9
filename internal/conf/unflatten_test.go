package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnflattenNested(t *testing.T) {
	got, err := Unflatten(map[string]any{
		"a.b": map[string]any{"c.d": 10, "c.e": 20},
	})
	require.NoError(t, err)
	want := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{"d": 10, "e": 20},
			},
		},
	}
	assert.Equal(t, want, got)
}

func TestUnflattenPlainKeysUnchanged(t *testing.T) {
	got, err := Unflatten(map[string]any{"foo": 1, "bar": "x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"foo": 1, "bar": "x"}, got)
}

func TestUnflattenSharedPrefix(t *testing.T) {
	got, err := Unflatten(map[string]any{"a.b.c": 1, "a.b.d": 2, "a.e": 3})
	require.NoError(t, err)
	want := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1, "d": 2},
			"e": 3,
		},
	}
	assert.Equal(t, want, got)
}

func TestUnflattenMergesIntoMapValue(t *testing.T) {
	got, err := Unflatten(map[string]any{
		"a.b":   map[string]any{"x": 1},
		"a.b.c": 2,
	})
	require.NoError(t, err)
	want := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"x": 1, "c": 2},
		},
	}
	assert.Equal(t, want, got)
}

func TestUnflattenConflicts(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
	}{
		{"leaf occupied by scalar", map[string]any{"a": 1, "a.b": 2}},
		{"leaf occupied by map", map[string]any{"a": map[string]any{"b": 1}, "a.b": 2}},
		{"path through scalar", map[string]any{"a.b": 1, "a.b.c": 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unflatten(tc.in)
			assert.ErrorContains(t, err, "conflicts")
		})
	}
}

func TestUnflattenInvalidKeys(t *testing.T) {
	for _, key := range []string{"", ".a", "a.", "a..b"} {
		_, err := Unflatten(map[string]any{key: 1})
		assert.Error(t, err, "key %q", key)
	}
}

func TestUnflattenDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"a.b": 1}
	_, err := Unflatten(in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a.b": 1}, in)
}

func TestUnflattenDeterministic(t *testing.T) {
	// Same logical input assembled in different insertion orders must
	// produce identical output.
	first := map[string]any{"m.x": 1, "m.y": 2, "n": 3}
	second := map[string]any{"n": 3, "m.y": 2, "m.x": 1}
	a, err := Unflatten(first)
	require.NoError(t, err)
	b, err := Unflatten(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
