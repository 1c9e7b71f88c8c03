package fincalc

// =============================================================================
// TABLE LOOKUP - Bounded integer-keyed tables with boundary clamping
// =============================================================================

// Lookup resolves key in a bounded integer-keyed table. A present key
// returns its value; an absent key clamps to the entry at maxKey, which
// is how published actuarial tables behave for ages past their last row.
//
// Written generically: nothing here is specific to distribution periods,
// and any bounded table (divisors, multipliers, tiers) resolves the same
// way.
func Lookup(table map[int]float64, key, maxKey int) (float64, error) {
	if len(table) == 0 {
		return 0, &InputError{Field: "table", Reason: "must not be empty"}
	}
	if v, ok := table[key]; ok {
		return v, nil
	}
	v, ok := table[maxKey]
	if !ok {
		return 0, &InputError{Field: "max_key", Reason: "no entry at table upper bound"}
	}
	return v, nil
}
