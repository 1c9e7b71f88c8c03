package fincalc

import "math"

// =============================================================================
// AMORTIZATION - Level payment for a fully amortizing loan
// =============================================================================

// LevelPayment computes the fixed per-period payment that fully amortizes
// principal over periods at ratePerPeriod:
//
//	payment = P * r(1+r)^n / ((1+r)^n - 1)
//
// With a zero rate the annuity formula degenerates to P / n.
//
// Every fixed-loan calculator in the hub (mortgage, personal, student,
// auto, EMI) reduces to this routine; they differ only in how they
// assemble principal, rate, and term, and in post-processing.
func LevelPayment(principal, ratePerPeriod float64, periods int) (float64, error) {
	if math.IsNaN(principal) || principal <= 0 {
		return 0, errNonPositive("principal")
	}
	if math.IsNaN(ratePerPeriod) || ratePerPeriod < 0 {
		return 0, errNegative("rate")
	}
	if periods <= 0 {
		return 0, errNonPositive("periods")
	}

	if ratePerPeriod == 0 {
		return principal / float64(periods), nil
	}

	growth := math.Pow(1+ratePerPeriod, float64(periods))
	return principal * ratePerPeriod * growth / (growth - 1), nil
}

// AmortizationSchedule computes the level payment and the full
// period-by-period schedule. Each period accrues interest on the running
// balance, the remainder of the payment retires principal, and the final
// payment is clamped to zero out the balance exactly so floating-point
// drift never leaves a residual cent.
//
// Entries are unrounded; presentation layers round with RoundCents so the
// closure invariant (interest + principal == payment, final balance == 0)
// holds to float64 precision here.
func AmortizationSchedule(principal, ratePerPeriod float64, periods int) (float64, []ScheduleEntry, error) {
	payment, err := LevelPayment(principal, ratePerPeriod, periods)
	if err != nil {
		return 0, nil, err
	}

	entries := make([]ScheduleEntry, 0, periods)
	balance := principal
	for p := 1; p <= periods; p++ {
		interest := balance * ratePerPeriod
		due := payment
		principalPortion := due - interest
		if p == periods {
			// Absorb rounding drift: final payment exactly clears the balance.
			principalPortion = balance
			due = interest + principalPortion
		}
		balance -= principalPortion
		entries = append(entries, ScheduleEntry{
			Period:    p,
			Payment:   due,
			Interest:  interest,
			Principal: principalPortion,
			Balance:   balance,
		})
	}
	return payment, entries, nil
}
