package fincalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/fincalc"
)

func TestFutureValue_LumpSumAnnualCompounding(t *testing.T) {
	// 10k at 7% for 10 years, annual compounding, no contributions.
	res, err := fincalc.FutureValue(10000, 0.07, 10, fincalc.Annually, 0, fincalc.Monthly)
	require.NoError(t, err)

	assert.InDelta(t, 19671.51, res.FutureValue, 0.01)
	assert.Zero(t, res.TotalContributions)
	assert.InDelta(t, 9671.51, res.TotalInterest, 0.01)
}

func TestFutureValue_MonthlyContributions(t *testing.T) {
	// Classic SIP shape: nothing down, 1000/month at 12% for 10 years.
	res, err := fincalc.FutureValue(0, 0.12, 10, fincalc.Monthly, 1000, fincalc.Monthly)
	require.NoError(t, err)

	assert.InDelta(t, 230038.69, res.FutureValue, 0.5)
	assert.InDelta(t, 120000, res.TotalContributions, 1e-9)
	assert.InDelta(t, res.FutureValue-120000, res.TotalInterest, 1e-6)
}

func TestFutureValue_ContributionFrequencyIndependentOfCompounding(t *testing.T) {
	// Monthly contributions under quarterly compounding are valued at the
	// monthly effective rate derived from the quarterly EAR.
	res, err := fincalc.FutureValue(0, 0.08, 5, fincalc.Quarterly, 200, fincalc.Monthly)
	require.NoError(t, err)

	assert.Greater(t, res.FutureValue, 200.0*12*5) // grew beyond contributions
	assert.InDelta(t, 12000, res.TotalContributions, 1e-9)
}

func TestFutureValue_ZeroRate(t *testing.T) {
	res, err := fincalc.FutureValue(1000, 0, 5, fincalc.Monthly, 100, fincalc.Monthly)
	require.NoError(t, err)

	assert.InDelta(t, 1000+100*60, res.FutureValue, 1e-9)
	assert.InDelta(t, 0, res.TotalInterest, 1e-9)
}

func TestFutureValue_MonotoneInRateYearsAndContribution(t *testing.T) {
	base, err := fincalc.FutureValue(5000, 0.05, 10, fincalc.Monthly, 100, fincalc.Monthly)
	require.NoError(t, err)

	higherRate, err := fincalc.FutureValue(5000, 0.06, 10, fincalc.Monthly, 100, fincalc.Monthly)
	require.NoError(t, err)
	assert.Greater(t, higherRate.FutureValue, base.FutureValue)

	longer, err := fincalc.FutureValue(5000, 0.05, 11, fincalc.Monthly, 100, fincalc.Monthly)
	require.NoError(t, err)
	assert.Greater(t, longer.FutureValue, base.FutureValue)

	bigger, err := fincalc.FutureValue(5000, 0.05, 10, fincalc.Monthly, 150, fincalc.Monthly)
	require.NoError(t, err)
	assert.Greater(t, bigger.FutureValue, base.FutureValue)
}

func TestPresentValue_RoundTripsFutureValue(t *testing.T) {
	// With no contributions, discounting the future value back at the
	// same per-period rate recovers the starting amount.
	for _, rate := range []float64{0, 0.03, 0.07, 0.12} {
		res, err := fincalc.FutureValue(10000, rate, 8, fincalc.Monthly, 0, fincalc.Monthly)
		require.NoError(t, err)

		pv, err := fincalc.PresentValue(res.FutureValue, rate/12, 12*8)
		require.NoError(t, err)
		assert.InDelta(t, 10000, pv, 1e-6, "rate %v", rate)
	}
}

func TestPresentValue_Preconditions(t *testing.T) {
	_, err := fincalc.PresentValue(-1, 0.01, 12)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)

	_, err = fincalc.PresentValue(1000, 0.01, 0)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)
}
