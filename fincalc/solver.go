package fincalc

import "math"

// =============================================================================
// ITERATIVE RATE SOLVER - Fee-adjusted borrowing rate (APR)
// =============================================================================

const (
	// solverTolerance is both the residual tolerance and the per-iteration
	// step of the rate search.
	solverTolerance = 1e-5

	// solverMaxIterations caps the search before the fallback applies.
	solverMaxIterations = 100
)

// ApproximateAPR finds the annualized rate that equates the nominal-rate
// payment stream to the net amount actually received (principal minus
// fees). One-dimensional root-find: with the monthly payment fixed at the
// nominal rate, solve PV(i) = principal - fees for the monthly discount
// rate i, then annualize.
//
// The search is a fixed-step nudge, not Newton or bisection: starting
// from nominal/12, the guess moves one tolerance step per iteration in
// the direction that shrinks the residual. That converges only when the
// root is close to the starting guess, which is the common case for
// realistic fee levels; when the cap is exhausted the function returns
// the documented closed-form fallback
//
//	nominal + fees / (principal * termYears)
//
// as a best-effort approximation rather than failing. Tests pin this
// termination contract (tolerance, cap, fallback), so a faster root
// finder must preserve all three to be a drop-in replacement.
//
// Domain errors, returned immediately because no iteration can recover:
// fees >= principal (nothing was actually lent) and a guess at or below
// -100% per period (the discount base collapses).
func ApproximateAPR(principal, nominalRate, fees, termYears float64) (float64, error) {
	if math.IsNaN(principal) || principal <= 0 {
		return 0, errNonPositive("principal")
	}
	if math.IsNaN(nominalRate) || nominalRate < 0 {
		return 0, errNegative("rate")
	}
	if math.IsNaN(fees) || fees < 0 {
		return 0, errNegative("fees")
	}
	if math.IsNaN(termYears) || termYears <= 0 {
		return 0, errNonPositive("term_years")
	}

	netPrincipal := principal - fees
	if netPrincipal <= 0 {
		return 0, &DomainError{Op: "approximate apr", Detail: "fees equal or exceed principal"}
	}

	periods := int(math.Round(termYears * 12))
	if periods <= 0 {
		return 0, errNonPositive("term_years")
	}
	monthlyRate, err := PerPeriodRate(nominalRate, Monthly, Monthly)
	if err != nil {
		return 0, err
	}
	payment, err := LevelPayment(principal, monthlyRate, periods)
	if err != nil {
		return 0, err
	}

	guess := nominalRate / 12
	for i := 0; i < solverMaxIterations; i++ {
		if guess <= -1 {
			return 0, &DomainError{Op: "approximate apr", Detail: "discount rate fell below -100% per period"}
		}
		pv := annuityPresentValue(payment, guess, periods)
		residual := pv - netPrincipal
		if math.Abs(residual) < solverTolerance {
			return guess * 12, nil
		}
		// PV decreases in the rate: too much present value means the
		// guess is too low.
		if residual > 0 {
			guess += solverTolerance
		} else {
			guess -= solverTolerance
		}
	}

	// Best-effort degradation: spread the fees linearly over the term.
	return nominalRate + fees/(principal*termYears), nil
}

// annuityPresentValue prices a stream of level payments at rate i per
// period (ordinary annuity).
func annuityPresentValue(payment, i float64, periods int) float64 {
	if i == 0 {
		return payment * float64(periods)
	}
	return payment * (1 - math.Pow(1+i, -float64(periods))) / i
}
