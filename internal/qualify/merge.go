// Package qualify holds the deterministic core of the interview engine: the
// field merge policy, the per-turn completion resolver, and the progress
// estimator. Nothing in this package talks to the language model or the
// store, which keeps every decision exercisable with plain table tests.
package qualify

import "github.com/alexanderramin/intake/internal/domain"

// Merge combines a fresh extraction into the accumulated session data and
// returns the result. The merge is additive: incoming values are already
// normalized (no nulls, no blanks), so every incoming key is written, and a
// key the extraction omitted is simply left alone. A fact, once captured,
// can be refined by a later non-empty extraction but never erased.
func Merge(existing, incoming domain.FieldMap) domain.FieldMap {
	out := existing.Clone()
	for key, val := range incoming {
		out[key] = val
	}
	return out
}
