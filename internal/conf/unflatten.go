package conf

import (
	"fmt"
	"sort"
	"strings"
)

// Unflatten expands dotted keys into nested maps, so {"a.b": 1} becomes
// {"a": {"b": 1}}. Map values are expanded recursively before insertion,
// meaning {"a.b": {"c.d": 10}} yields {"a": {"b": {"c": {"d": 10}}}}.
// Keys are processed in sorted order, so the result does not depend on map
// iteration. Intermediate maps created by one key are reused by later keys
// sharing the prefix. The input is not modified.
//
// Unflatten returns an error for keys with empty segments and for
// collisions, where a path needs to pass through or land on a slot already
// holding a non-map value.
func Unflatten(values map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(values))
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := values[k]
		if m, ok := v.(map[string]any); ok {
			nested, err := Unflatten(m)
			if err != nil {
				return nil, fmt.Errorf("under %q: %w", k, err)
			}
			v = nested
		}
		if err := insert(out, k, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func insert(dst map[string]any, key string, value any) error {
	segments := strings.Split(key, ".")
	for _, s := range segments {
		if s == "" {
			return fmt.Errorf("invalid key %q: empty segment", key)
		}
	}
	cur := dst
	for i, s := range segments[:len(segments)-1] {
		next, ok := cur[s]
		if !ok {
			m := make(map[string]any)
			cur[s] = m
			cur = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("key %q conflicts with value at %q", key, strings.Join(segments[:i+1], "."))
		}
		cur = m
	}
	leaf := segments[len(segments)-1]
	if _, ok := cur[leaf]; ok {
		return fmt.Errorf("key %q conflicts with an existing value", key)
	}
	cur[leaf] = value
	return nil
}
