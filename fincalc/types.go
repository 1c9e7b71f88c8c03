/*
Package fincalc provides the core time-value-of-money computation engine.

PURPOSE:
  This package contains the numeric procedures shared by every calculator
  in the hub: rate conversion across mismatched compounding and payment
  frequencies, level-payment amortization, lump-sum and annuity growth,
  bounded iterative rate solving, and month-by-month payoff simulation.

KEY CONCEPTS IN THIS FILE (types.go):
  - Frequency: How often interest compounds or payments occur
  - ScheduleEntry: One row of an amortization or payoff schedule
  - GrowthResult / PayoffResult: Structured result bundles

DESIGN PRINCIPLES:
  1. Purity: Every function is a pure function of its arguments.
     No shared state, no I/O, no logging inside the engine.
  2. Errors, not panics: Numerically invalid domains return typed
     errors (see errors.go) so callers can render a specific message.
  3. Bounded iteration: The two iterative routines (solver, payoff)
     enforce hard iteration ceilings and always terminate.

PRECISION:
  Internal arithmetic is float64 with the documented tolerances
  (1e-5 solver tolerance, 0.005 balance-zero epsilon). decimal.Decimal
  is used at the result edges to round monetary values to whole cents
  without binary-float drift.

USAGE:
  r, _ := fincalc.PerPeriodRate(0.06, fincalc.Monthly, fincalc.Monthly)
  pmt, _ := fincalc.LevelPayment(200000, r, 360)
  // pmt ≈ 1199.10

SEE ALSO:
  - rate.go: Effective rate conversion
  - amortize.go: Level payment and schedule generation
  - growth.go: Future and present value
  - solver.go: Iterative APR approximation
  - payoff.go: Fixed-payment payoff simulation
*/
package fincalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// FREQUENCY - Periods per year for compounding and payments
// =============================================================================

// Frequency identifies how often something happens within a year.
// Compounding frequency and payment/contribution frequency are both
// expressed as a Frequency and may differ on the same calculation.
type Frequency string

const (
	Annually     Frequency = "annually"
	SemiAnnually Frequency = "semi_annually"
	Quarterly    Frequency = "quarterly"
	Monthly      Frequency = "monthly"
	Daily        Frequency = "daily"
)

// PeriodsPerYear returns the number of periods this frequency divides a
// year into. Unknown frequencies return 0; callers validate first.
func (f Frequency) PeriodsPerYear() float64 {
	switch f {
	case Annually:
		return 1
	case SemiAnnually:
		return 2
	case Quarterly:
		return 4
	case Monthly:
		return 12
	case Daily:
		return 365
	default:
		return 0
	}
}

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	return f.PeriodsPerYear() > 0
}

// ParseFrequency converts a wire-format tag into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", &InputError{Field: "frequency", Reason: fmt.Sprintf("unknown frequency %q", s)}
	}
	return f, nil
}

// =============================================================================
// SCHEDULE ENTRY - One period of an amortization or payoff schedule
// =============================================================================

// ScheduleEntry is one row of a period-by-period schedule. Balance is
// the remaining balance after the payment. Engine output is unrounded;
// see RoundEntry.
type ScheduleEntry struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// =============================================================================
// RESULT BUNDLES
// =============================================================================

// GrowthResult bundles the outcome of a future-value calculation.
type GrowthResult struct {
	FutureValue        float64 `json:"future_value"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
}

// PayoffResult bundles the outcome of a fixed-payment payoff simulation.
type PayoffResult struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"total_interest"`
	TotalPaid     float64 `json:"total_paid"`
}

// =============================================================================
// MONETARY ROUNDING
// =============================================================================

// RoundCents rounds a monetary amount to whole cents using decimal
// arithmetic. Used at result edges only; internal iteration stays float64
// so the documented tolerances keep their meaning.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// RoundEntry rounds every monetary field of a schedule entry to cents.
// Schedules come out of the engine unrounded so closure invariants hold;
// presentation layers round each row on the way out.
func RoundEntry(e ScheduleEntry) ScheduleEntry {
	e.Payment = RoundCents(e.Payment)
	e.Interest = RoundCents(e.Interest)
	e.Principal = RoundCents(e.Principal)
	e.Balance = RoundCents(e.Balance)
	return e
}
