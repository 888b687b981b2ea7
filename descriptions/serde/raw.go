package serde

// obj is the generic map shape go-yaml decodes an object node into.
type obj = map[string]any

// asObj coerces v (expected to be a YAML/JSON mapping) into an obj, or
// returns nil, false if v is not a mapping.
func asObj(v any) (obj, bool) {
	switch m := v.(type) {
	case obj:
		return m, true
	case map[any]any:
		out := make(obj, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}

		return out, true
	default:
		return nil, false
	}
}

// asSlice coerces v into a []any, or returns nil, false.
func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// field looks up the first of keys present in m, returning its raw value
// and true. Callers pass the canonical (primary) key first and any legacy
// aliases after; precedence is primary-then-legacy.
func field(m obj, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}

	return nil, false
}

// strField reads a string field, defaulting to def when absent.
func strField(m obj, def string, keys ...string) string {
	v, ok := field(m, keys...)
	if !ok {
		return def
	}

	s, _ := v.(string)

	return s
}

// strFieldPtr reads an optional string field, returning "" when absent
// (callers distinguish "absent" from "present but empty" via ok).
func strFieldPtr(m obj, keys ...string) (string, bool) {
	v, ok := field(m, keys...)
	if !ok {
		return "", false
	}

	s, _ := v.(string)

	return s, true
}

// boolField reads a bool field, defaulting to def when absent.
func boolField(m obj, def bool, keys ...string) bool {
	v, ok := field(m, keys...)
	if !ok {
		return def
	}

	b, _ := v.(bool)

	return b
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}

// strSliceField reads a []string field, tolerating a mixed []any of
// strings. Absent yields nil.
func strSliceField(m obj, keys ...string) []string {
	v, ok := field(m, keys...)
	if !ok {
		return nil
	}

	items, ok := asSlice(v)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))

	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

// objSliceField reads a []obj field, skipping any element that isn't a
// mapping. Absent yields nil.
func objSliceField(m obj, keys ...string) []obj {
	v, ok := field(m, keys...)
	if !ok {
		return nil
	}

	items, ok := asSlice(v)
	if !ok {
		return nil
	}

	out := make([]obj, 0, len(items))

	for _, it := range items {
		if o, ok := asObj(it); ok {
			out = append(out, o)
		}
	}

	return out
}

// objField reads a nested mapping field. Absent yields nil, false.
func objField(m obj, keys ...string) (obj, bool) {
	v, ok := field(m, keys...)
	if !ok {
		return nil, false
	}

	return asObj(v)
}

// usedLegacyAlias reports whether legacy supplied m's value for this field,
// i.e. legacy is present but none of primary are. Callers use this to warn
// when a document still relies on a retired key instead of its replacement.
func usedLegacyAlias(m obj, primary []string, legacy string) bool {
	if _, ok := m[legacy]; !ok {
		return false
	}

	for _, p := range primary {
		if _, ok := m[p]; ok {
			return false
		}
	}

	return true
}
