package fincalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/fincalc"
)

func TestSimulatePayoff_InterestOnlyPaymentNeverConverges(t *testing.T) {
	// $1000 at 20% APR accrues $16.67 interest in month one; a $16.67
	// payment treads water forever.
	_, err := fincalc.SimulatePayoff(1000, 0.20, 16.67)
	assert.ErrorIs(t, err, fincalc.ErrNonConverging)

	var nc *fincalc.NonConvergingError
	require.ErrorAs(t, err, &nc)
	assert.Zero(t, nc.Iterations, "pre-check fires before any simulation")
}

func TestSimulatePayoff_RealisticPaymentRetiresBalance(t *testing.T) {
	res, err := fincalc.SimulatePayoff(1000, 0.20, 100)
	require.NoError(t, err)

	assert.Equal(t, 12, res.Months)
	assert.Greater(t, res.TotalInterest, 0.0)
	// Total paid is the original balance plus every cent of interest.
	assert.InDelta(t, 1000+res.TotalInterest, res.TotalPaid, 1e-6)
	// Eleven full payments plus an adjusted final month.
	assert.Greater(t, res.TotalPaid, 1100.0)
	assert.Less(t, res.TotalPaid, 1200.0)
}

func TestSimulatePayoff_ZeroRateIsStraightDivision(t *testing.T) {
	res, err := fincalc.SimulatePayoff(1000, 0, 300)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Months) // ceil(1000/300)
	assert.Zero(t, res.TotalInterest)
	assert.Equal(t, 1000.0, res.TotalPaid)
}

func TestSimulatePayoff_Preconditions(t *testing.T) {
	_, err := fincalc.SimulatePayoff(0, 0.2, 100)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)

	_, err = fincalc.SimulatePayoff(1000, -0.2, 100)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)

	_, err = fincalc.SimulatePayoff(1000, 0.2, 0)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)
}

func TestSimulatePayoffSchedule_FinalMonthClampsToRemainder(t *testing.T) {
	res, entries, err := fincalc.SimulatePayoffSchedule(1000, 0.20, 100)
	require.NoError(t, err)
	require.Len(t, entries, res.Months)

	last := entries[len(entries)-1]
	assert.Less(t, last.Payment, 100.0, "final month pays only what remains")
	assert.InDelta(t, 0, last.Balance, 1e-6)

	for _, e := range entries[:len(entries)-1] {
		assert.InDelta(t, 100.0, e.Payment, 1e-9)
		assert.InDelta(t, e.Payment, e.Interest+e.Principal, 1e-9)
	}
}

func TestSimulatePayoffSchedule_ZeroRateSchedule(t *testing.T) {
	res, entries, err := fincalc.SimulatePayoffSchedule(1000, 0, 300)
	require.NoError(t, err)
	require.Len(t, entries, res.Months)
	assert.Equal(t, 100.0, entries[len(entries)-1].Payment)
	assert.InDelta(t, 0, entries[len(entries)-1].Balance, 1e-9)
}
