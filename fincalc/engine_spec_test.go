/*
engine_spec_test.go - Executable specifications for the calculation engine

PURPOSE:
  These tests document the engine's behavioral contracts in one place.
  Each test states a property from DESIGN.md and validates that the
  implementation honors it.

ORGANIZATION:
  1. Zero-rate degeneracy - every rate-dividing formula branches on zero
  2. Purity - identical inputs always produce identical outputs
  3. Bounded iteration - iterative routines always terminate
  4. Error discipline - failures are returned, never panicked

READING THESE TESTS:
  Each test has a descriptive name, a GIVEN/WHEN/THEN comment block, and
  assertions with explanatory messages. They are intentionally verbose.
*/
package fincalc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/warp/finance-engine/fincalc"
)

// =============================================================================
// PROPERTY 1: ZERO-RATE DEGENERACY
// =============================================================================

func TestProperty_ZeroRate_EveryEngineDegeneratesCleanly(t *testing.T) {
	// GIVEN: A zero interest rate
	// WHEN: Running each formula that otherwise divides by the rate
	// THEN: Each returns its straight-line degenerate form, never NaN/Inf

	payment, err := fincalc.LevelPayment(1200, 0, 12)
	if err != nil || payment != 100 {
		t.Errorf("LevelPayment at zero rate should be P/n = 100, got %v (err %v)", payment, err)
	}

	payout, err := fincalc.PeriodicPayout(2400, 0, 24)
	if err != nil || payout != 100 {
		t.Errorf("PeriodicPayout at zero rate should be PV/n = 100, got %v (err %v)", payout, err)
	}

	growth, err := fincalc.FutureValue(500, 0, 2, fincalc.Monthly, 50, fincalc.Monthly)
	if err != nil || growth.FutureValue != 500+50*24 {
		t.Errorf("FutureValue at zero rate should be PV + PMT*N, got %v (err %v)", growth.FutureValue, err)
	}

	res, err := fincalc.SimulatePayoff(1000, 0, 400)
	if err != nil || res.Months != 3 || res.TotalInterest != 0 {
		t.Errorf("zero-rate payoff should be ceil(B/P) months with zero interest, got %+v (err %v)", res, err)
	}
}

// =============================================================================
// PROPERTY 2: PURITY
// =============================================================================

func TestProperty_Purity_SameInputsSameOutputs(t *testing.T) {
	// GIVEN: Any calculation invoked twice with identical inputs
	// WHEN: Comparing the results
	// THEN: They are bit-identical - the engine holds no state between calls

	a1, err1 := fincalc.ApproximateAPR(10000, 0.06, 250, 3)
	a2, err2 := fincalc.ApproximateAPR(10000, 0.06, 250, 3)
	if err1 != nil || err2 != nil || a1 != a2 {
		t.Errorf("solver is not deterministic: %v vs %v", a1, a2)
	}

	p1, _ := fincalc.SimulatePayoff(2500, 0.18, 120)
	p2, _ := fincalc.SimulatePayoff(2500, 0.18, 120)
	if p1 != p2 {
		t.Errorf("payoff simulation is not deterministic: %+v vs %+v", p1, p2)
	}
}

// =============================================================================
// PROPERTY 3: BOUNDED ITERATION
// =============================================================================

func TestProperty_BoundedIteration_SolverAlwaysTerminates(t *testing.T) {
	// GIVEN: Inputs whose root is far outside the solver's 100-step reach
	// WHEN: Running the solver
	// THEN: It returns the closed-form fallback, never a NaN and never hangs

	apr, err := fincalc.ApproximateAPR(50000, 0.10, 4000, 5)
	if err != nil {
		t.Fatalf("far-root inputs should fall back, not fail: %v", err)
	}
	want := 0.10 + 4000.0/(50000*5)
	if math.Abs(apr-want) > 1e-9 {
		t.Errorf("fallback should be nominal + fees/(principal*years) = %v, got %v", want, apr)
	}
}

func TestProperty_BoundedIteration_PayoffCapIsDefenseInDepth(t *testing.T) {
	// GIVEN: A payment that barely clears the pre-check
	// WHEN: Simulating
	// THEN: The simulation either retires the balance or reports
	//       non-convergence; it never loops past the 1200-month ceiling

	res, err := fincalc.SimulatePayoff(10000, 0.18, 151)
	if err != nil {
		if !errors.Is(err, fincalc.ErrNonConverging) {
			t.Fatalf("only non-convergence is acceptable here, got %v", err)
		}
		return
	}
	if res.Months <= 0 || res.Months > 1200 {
		t.Errorf("months out of bounds: %d", res.Months)
	}
}

// =============================================================================
// PROPERTY 4: ERROR DISCIPLINE
// =============================================================================

func TestProperty_Errors_AllEngineFailuresAreClientErrors(t *testing.T) {
	// GIVEN: Each failure mode the engine can produce
	// WHEN: Classifying with IsClientError
	// THEN: All classify as caller-caused, so transports map them uniformly

	_, inputErr := fincalc.LevelPayment(-1, 0.005, 12)
	_, domainErr := fincalc.ApproximateAPR(100, 0.06, 100, 1)
	_, convErr := fincalc.SimulatePayoff(1000, 0.20, 10)

	for _, err := range []error{inputErr, domainErr, convErr} {
		if err == nil {
			t.Fatal("expected an error")
		}
		if !fincalc.IsClientError(err) {
			t.Errorf("engine error should classify as client error: %v", err)
		}
	}
}
