package fincalc

import "math"

// =============================================================================
// RATE CONVERSION - Nominal annual rate to effective per-period rate
// =============================================================================

// EffectiveAnnualRate converts a nominal annual rate (decimal fraction,
// e.g. 0.05 for 5%) into the effective annual rate for the given
// compounding frequency:
//
//	EAR = (1 + nominal/m)^m - 1
//
// where m is the compounding periods per year.
func EffectiveAnnualRate(nominal float64, compounding Frequency) (float64, error) {
	if math.IsNaN(nominal) || nominal < 0 {
		return 0, errNegative("rate")
	}
	if !compounding.Valid() {
		return 0, &InputError{Field: "compounding", Reason: "unknown frequency"}
	}
	if nominal == 0 {
		return 0, nil
	}
	m := compounding.PeriodsPerYear()
	return math.Pow(1+nominal/m, m) - 1, nil
}

// PerPeriodRate converts a nominal annual rate plus its compounding
// frequency into the effective rate per period of the target frequency:
//
//	i = (1 + EAR)^(1/k) - 1
//
// where k is the target periods per year. Compounding frequency (how the
// bank compounds) and target frequency (how the user pays or contributes)
// are independent: a monthly contribution under quarterly compounding is
// valued with the quarterly EAR re-derived at a monthly step.
//
// The conversion always goes through the EAR even when the two frequencies
// match. The familiar nominal/m shortcut is the special case the EAR path
// reproduces exactly, and the general path is what keeps mismatched
// frequencies correct.
func PerPeriodRate(nominal float64, compounding, target Frequency) (float64, error) {
	ear, err := EffectiveAnnualRate(nominal, compounding)
	if err != nil {
		return 0, err
	}
	if !target.Valid() {
		return 0, &InputError{Field: "target", Reason: "unknown frequency"}
	}
	// Zero short-circuits so downstream formulas that divide by the rate
	// can branch on an exact zero.
	if ear == 0 {
		return 0, nil
	}
	return math.Pow(1+ear, 1/target.PeriodsPerYear()) - 1, nil
}
