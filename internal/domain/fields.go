package domain

import "strings"

// FieldMap holds the structured data extracted from a session. Values are
// either string or float64; empty and null values are dropped on the way in,
// so a present key always carries real information.
type FieldMap map[string]any

// Has reports whether the field is present with a usable value.
func (m FieldMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Clone returns a shallow copy. Values are scalars, so a shallow copy is a
// full copy.
func (m FieldMap) Clone() FieldMap {
	out := make(FieldMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// NormalizeFields filters a raw decoded JSON object down to a FieldMap:
// only keys in allowed survive, and only string or numeric values. Strings
// are trimmed; blank strings count as absent, matching the rule that an
// extraction may omit a field but never assert emptiness.
func NormalizeFields(raw map[string]any, allowed []string) FieldMap {
	allowedSet := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = true
	}

	out := make(FieldMap)
	for key, val := range raw {
		if !allowedSet[key] {
			continue
		}
		switch v := val.(type) {
		case string:
			trimmed := strings.TrimSpace(v)
			if trimmed != "" {
				out[key] = trimmed
			}
		case float64:
			out[key] = v
		case int:
			out[key] = float64(v)
		}
	}
	return out
}
