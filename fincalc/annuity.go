package fincalc

import "math"

// =============================================================================
// ANNUITY PAYOUT - Periodic draw that exactly drains a pool
// =============================================================================

// PeriodicPayout computes the level periodic draw that exactly exhausts a
// present-value pool over periods at ratePerPeriod:
//
//	payout = PV * r(1+r)^n / ((1+r)^n - 1)
//
// with the zero-rate fallback PV / n.
//
// Mathematically this is LevelPayment with the pool standing in for the
// loan principal, but the two are kept separate: the domain framing
// (draining a pool vs. amortizing a debt) differs, and each carries its
// own precondition and zero-rate handling so neither can be weakened by
// a change to the other.
func PeriodicPayout(pool, ratePerPeriod float64, periods int) (float64, error) {
	if math.IsNaN(pool) || pool <= 0 {
		return 0, errNonPositive("pool")
	}
	if math.IsNaN(ratePerPeriod) || ratePerPeriod < 0 {
		return 0, errNegative("rate")
	}
	if periods <= 0 {
		return 0, errNonPositive("periods")
	}

	if ratePerPeriod == 0 {
		return pool / float64(periods), nil
	}

	growth := math.Pow(1+ratePerPeriod, float64(periods))
	return pool * ratePerPeriod * growth / (growth - 1), nil
}
