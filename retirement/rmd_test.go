package retirement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/fincalc"
	"github.com/warp/finance-engine/refdata"
	"github.com/warp/finance-engine/retirement"
)

func newCalculator(t *testing.T) *retirement.Calculator {
	store := refdata.NewMemory()
	require.NoError(t, store.PutTable(context.Background(), retirement.UniformLifetimeTable()))
	return retirement.NewCalculator(store)
}

func TestRMD_PublishedTableValues(t *testing.T) {
	calc := newCalculator(t)

	res, err := calc.RMD(context.Background(), retirement.RMDInput{Age: 75, AccountBalance: 500000})
	require.NoError(t, err)

	assert.Equal(t, 24.6, res.Divisor)
	assert.InDelta(t, 500000/24.6, res.Distribution, 0.01)
}

func TestRMD_AgePastTableClampsToFinalRow(t *testing.T) {
	calc := newCalculator(t)

	res, err := calc.RMD(context.Background(), retirement.RMDInput{Age: 125, AccountBalance: 100000})
	require.NoError(t, err)

	assert.Equal(t, 2.0, res.Divisor, "ages past 120 use the final divisor")
	assert.InDelta(t, 50000, res.Distribution, 0.01)
}

func TestRMD_BelowStartingAgeIsDomainError(t *testing.T) {
	calc := newCalculator(t)

	_, err := calc.RMD(context.Background(), retirement.RMDInput{Age: 60, AccountBalance: 100000})
	assert.ErrorIs(t, err, fincalc.ErrDomain)
}

func TestRMD_Preconditions(t *testing.T) {
	calc := newCalculator(t)

	_, err := calc.RMD(context.Background(), retirement.RMDInput{Age: 75, AccountBalance: 0})
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)

	_, err = calc.RMD(context.Background(), retirement.RMDInput{Age: 0, AccountBalance: 1000})
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)
}

func TestRMD_MissingTableSurfacesStoreError(t *testing.T) {
	calc := retirement.NewCalculator(refdata.NewMemory())

	_, err := calc.RMD(context.Background(), retirement.RMDInput{Age: 75, AccountBalance: 1000})
	assert.ErrorIs(t, err, refdata.ErrTableNotFound)
}
