package savings

import (
	"math"

	"github.com/warp/finance-engine/fincalc"
)

// =============================================================================
// GROWTH CALCULATORS
// =============================================================================

// Growth values a lump sum plus an optional contribution stream. The
// same routine backs the future-value, investment-growth and SIP forms;
// they differ only in labeling and defaults.
func Growth(in GrowthInput) (GrowthResult, error) {
	in = withGrowthDefaults(in)

	res, err := fincalc.FutureValue(in.InitialAmount, in.AnnualRate, in.Years,
		in.Compounding, in.Contribution, in.ContributionFreq)
	if err != nil {
		return GrowthResult{}, err
	}
	return GrowthResult{
		FutureValue:        fincalc.RoundCents(res.FutureValue),
		TotalContributions: fincalc.RoundCents(res.TotalContributions),
		TotalInterest:      fincalc.RoundCents(res.TotalInterest),
	}, nil
}

// SIP is Growth with no initial amount and contributions pinned to
// monthly, matching how SIP forms are presented.
func SIP(in SIPInput) (GrowthResult, error) {
	return Growth(GrowthInput{
		AnnualRate:       in.AnnualRate,
		Years:            in.Years,
		Compounding:      fincalc.Monthly,
		Contribution:     in.MonthlyContribution,
		ContributionFreq: fincalc.Monthly,
	})
}

// PresentValue answers "what is a future amount worth today" at the
// compounding frequency's per-period rate.
func PresentValue(in PresentValueInput) (PresentValueResult, error) {
	if in.Compounding == "" {
		in.Compounding = fincalc.Annually
	}
	rate, err := fincalc.PerPeriodRate(in.AnnualRate, in.Compounding, in.Compounding)
	if err != nil {
		return PresentValueResult{}, err
	}
	periods := in.Compounding.PeriodsPerYear() * in.Years
	pv, err := fincalc.PresentValue(in.FutureValue, rate, periods)
	if err != nil {
		return PresentValueResult{}, err
	}
	return PresentValueResult{
		PresentValue: fincalc.RoundCents(pv),
		Discount:     fincalc.RoundCents(in.FutureValue - pv),
	}, nil
}

func withGrowthDefaults(in GrowthInput) GrowthInput {
	if in.Compounding == "" {
		in.Compounding = fincalc.Annually
	}
	if in.ContributionFreq == "" {
		in.ContributionFreq = fincalc.Monthly
	}
	return in
}

// =============================================================================
// ANNUITY PAYOUT
// =============================================================================

// AnnuityPayout computes the level draw that exactly exhausts a pool
// over the payout horizon. The pool keeps earning at the payout
// frequency's effective rate while it drains, which is why the total
// paid out exceeds the pool at any positive rate.
func AnnuityPayout(in AnnuityPayoutInput) (AnnuityPayoutResult, error) {
	if in.PayoutFreq == "" {
		in.PayoutFreq = fincalc.Monthly
	}
	if in.Compounding == "" {
		in.Compounding = in.PayoutFreq
	}
	rate, err := fincalc.PerPeriodRate(in.AnnualRate, in.Compounding, in.PayoutFreq)
	if err != nil {
		return AnnuityPayoutResult{}, err
	}
	if math.IsNaN(in.Years) || in.Years <= 0 {
		return AnnuityPayoutResult{}, &fincalc.InputError{Field: "years", Reason: "must be positive"}
	}
	periods := int(math.Round(in.Years * in.PayoutFreq.PeriodsPerYear()))
	if periods <= 0 {
		return AnnuityPayoutResult{}, &fincalc.InputError{Field: "years", Reason: "horizon shorter than one payout period"}
	}

	payout, err := fincalc.PeriodicPayout(in.Pool, rate, periods)
	if err != nil {
		return AnnuityPayoutResult{}, err
	}

	total := payout * float64(periods)
	return AnnuityPayoutResult{
		Payout:       fincalc.RoundCents(payout),
		Periods:      periods,
		TotalPaidOut: fincalc.RoundCents(total),
		TotalGrowth:  fincalc.RoundCents(total - in.Pool),
	}, nil
}
