package fincalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/fincalc"
)

func TestEffectiveAnnualRate_MonthlyCompounding(t *testing.T) {
	// 6% nominal compounded monthly: (1 + 0.06/12)^12 - 1
	ear, err := fincalc.EffectiveAnnualRate(0.06, fincalc.Monthly)
	require.NoError(t, err)
	assert.InDelta(t, 0.0616778, ear, 1e-6)
}

func TestEffectiveAnnualRate_AnnualCompoundingIsIdentity(t *testing.T) {
	ear, err := fincalc.EffectiveAnnualRate(0.05, fincalc.Annually)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, ear, 1e-12)
}

func TestPerPeriodRate_MatchingFrequenciesRecoverNominalOverM(t *testing.T) {
	// When compounding and payment frequency agree, the EAR round trip
	// reproduces nominal/m.
	r, err := fincalc.PerPeriodRate(0.06, fincalc.Monthly, fincalc.Monthly)
	require.NoError(t, err)
	assert.InDelta(t, 0.005, r, 1e-12)
}

func TestPerPeriodRate_MismatchedFrequencies(t *testing.T) {
	// Annual compounding priced at a monthly step: (1.06)^(1/12) - 1.
	r, err := fincalc.PerPeriodRate(0.06, fincalc.Annually, fincalc.Monthly)
	require.NoError(t, err)
	assert.InDelta(t, 0.0048676, r, 1e-6)

	// Quarterly compounding priced at a monthly step.
	r, err = fincalc.PerPeriodRate(0.05, fincalc.Quarterly, fincalc.Monthly)
	require.NoError(t, err)
	assert.InDelta(t, 0.0041487, r, 1e-6)
}

func TestPerPeriodRate_ZeroRateShortCircuits(t *testing.T) {
	r, err := fincalc.PerPeriodRate(0, fincalc.Daily, fincalc.Monthly)
	require.NoError(t, err)
	assert.Zero(t, r)
}

func TestPerPeriodRate_NegativeRateRejected(t *testing.T) {
	_, err := fincalc.PerPeriodRate(-0.01, fincalc.Monthly, fincalc.Monthly)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)
}

func TestParseFrequency(t *testing.T) {
	f, err := fincalc.ParseFrequency("quarterly")
	require.NoError(t, err)
	assert.Equal(t, fincalc.Quarterly, f)
	assert.EqualValues(t, 4, f.PeriodsPerYear())

	_, err = fincalc.ParseFrequency("fortnightly")
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)
}
