// Package deepmerge merges generic configuration trees.
//
// Values are the shapes produced by the JSON, YAML and TOML decoders:
// map[string]any, slices and scalars. Merge never mutates its arguments and
// the result shares no maps or slices with them, so a merged tree can be
// merged again without corrupting the inputs it was built from.
//
// Rules:
//
//   - map + map: keys merge recursively
//   - slice + slice: target elements followed by source elements
//   - anything else: the source value wins (last write wins)
package deepmerge

import (
	"reflect"
)

// Merge returns a new tree with source merged onto target.
func Merge(target, source any) any {
	if isSlice(target) && isSlice(source) {
		return concat(target, source)
	}

	tm, tok := asMap(target)
	sm, sok := asMap(source)
	if !tok || !sok {
		return Clone(source)
	}

	out := make(map[string]any, len(tm)+len(sm))
	for k, v := range tm {
		out[k] = Clone(v)
	}
	for k, v := range sm {
		existing, ok := tm[k]
		if ok && isMergeable(v) {
			out[k] = Merge(existing, v)
			continue
		}
		out[k] = Clone(v)
	}
	return out
}

// Maps is Merge for the common case of two configuration objects.
func Maps(target, source map[string]any) map[string]any {
	if target == nil {
		target = map[string]any{}
	}
	if source == nil {
		source = map[string]any{}
	}
	return Merge(target, source).(map[string]any)
}

// Clone returns a deep copy of v. Maps with string keys become
// map[string]any and slices become []any; scalars are returned as-is.
func Clone(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	}

	if m, ok := asMap(v); ok {
		return Clone(m)
	}
	if isSlice(v) {
		return Clone(toSlice(v))
	}
	return v
}

func concat(target, source any) []any {
	a := toSlice(target)
	b := toSlice(source)
	out := make([]any, 0, len(a)+len(b))
	for _, e := range a {
		out = append(out, Clone(e))
	}
	for _, e := range b {
		out = append(out, Clone(e))
	}
	return out
}

func isMergeable(v any) bool {
	if isSlice(v) {
		return true
	}
	_, ok := asMap(v)
	return ok
}

func isSlice(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func toSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// asMap views any map keyed by strings as map[string]any. TOML tables and
// Go literals such as map[string][]string are accepted as objects.
func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	if rv.IsNil() {
		return map[string]any{}, true
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
