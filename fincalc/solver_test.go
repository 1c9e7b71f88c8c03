package fincalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/fincalc"
)

func TestApproximateAPR_NoFeesConvergesToNominal(t *testing.T) {
	// With zero fees the payment stream discounted at nominal/12 prices
	// back to the principal exactly, so the search terminates on entry.
	apr, err := fincalc.ApproximateAPR(10000, 0.06, 0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.06, apr, 1e-9)
}

func TestApproximateAPR_FeesTriggerDocumentedFallback(t *testing.T) {
	// The fixed-step search moves the guess at most 100 tolerance steps
	// from nominal/12; any realistic fee load puts the root further away,
	// so the documented fallback applies:
	//
	//   nominal + fees/(principal*termYears)
	apr, err := fincalc.ApproximateAPR(10000, 0.06, 300, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.06+300.0/(10000*3), apr, 1e-9)
	assert.False(t, apr != apr, "APR must never be NaN")
}

func TestApproximateAPR_FeesAtOrAbovePrincipalIsDomainError(t *testing.T) {
	_, err := fincalc.ApproximateAPR(1000, 0.06, 1000, 3)
	assert.ErrorIs(t, err, fincalc.ErrDomain)

	_, err = fincalc.ApproximateAPR(1000, 0.06, 1500, 3)
	assert.ErrorIs(t, err, fincalc.ErrDomain)
}

func TestApproximateAPR_Preconditions(t *testing.T) {
	_, err := fincalc.ApproximateAPR(0, 0.06, 10, 3)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)

	_, err = fincalc.ApproximateAPR(1000, -0.01, 10, 3)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)

	_, err = fincalc.ApproximateAPR(1000, 0.06, -10, 3)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)

	_, err = fincalc.ApproximateAPR(1000, 0.06, 10, 0)
	assert.ErrorIs(t, err, fincalc.ErrInvalidInput)
}

func TestApproximateAPR_FallbackGrowsWithFees(t *testing.T) {
	low, err := fincalc.ApproximateAPR(10000, 0.06, 100, 3)
	require.NoError(t, err)
	high, err := fincalc.ApproximateAPR(10000, 0.06, 500, 3)
	require.NoError(t, err)
	assert.Greater(t, high, low)
}
