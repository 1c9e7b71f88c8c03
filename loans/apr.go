package loans

import (
	"math"

	"github.com/warp/finance-engine/fincalc"
)

// =============================================================================
// FEE-ADJUSTED APR
// =============================================================================

// APR approximates the effective borrowing rate once upfront fees are
// counted: the borrower pays a stream priced off the full principal but
// only walks away with principal minus fees. Delegates the root-find
// (and its documented fallback) to fincalc.ApproximateAPR.
func APR(in APRInput) (APRResult, error) {
	apr, err := fincalc.ApproximateAPR(in.Principal, in.AnnualRate, in.Fees, in.TermYears)
	if err != nil {
		return APRResult{}, err
	}

	rate, err := fincalc.PerPeriodRate(in.AnnualRate, fincalc.Monthly, fincalc.Monthly)
	if err != nil {
		return APRResult{}, err
	}
	periods := int(math.Round(in.TermYears * 12))
	payment, err := fincalc.LevelPayment(in.Principal, rate, periods)
	if err != nil {
		return APRResult{}, err
	}

	return APRResult{
		APR:            apr,
		NetReceived:    fincalc.RoundCents(in.Principal - in.Fees),
		MonthlyPayment: fincalc.RoundCents(payment),
	}, nil
}
