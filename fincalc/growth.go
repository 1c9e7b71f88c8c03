package fincalc

import "math"

// =============================================================================
// GROWTH - Future and present value of a lump sum plus contributions
// =============================================================================

// FutureValue grows a present value plus a stream of periodic
// contributions over years at a nominal annual rate.
//
// The lump sum compounds at the compounding frequency:
//
//	FV_principal = PV * (1 + nominal/m)^(m*years)
//
// Contributions are valued at the contribution-frequency effective rate
// obtained through PerPeriodRate, so a monthly contribution under
// quarterly compounding is still priced correctly:
//
//	FV_contrib = PMT * ((1+i)^N - 1) / i    (PMT*N when i == 0)
//
// where N = contribution periods per year * years. Years may be
// fractional.
func FutureValue(presentValue, nominal, years float64, compounding Frequency, contribution float64, contributionFreq Frequency) (GrowthResult, error) {
	if math.IsNaN(presentValue) || presentValue < 0 {
		return GrowthResult{}, errNegative("present_value")
	}
	if math.IsNaN(years) || years <= 0 {
		return GrowthResult{}, errNonPositive("years")
	}
	if math.IsNaN(contribution) || contribution < 0 {
		return GrowthResult{}, errNegative("contribution")
	}
	contribRate, err := PerPeriodRate(nominal, compounding, contributionFreq)
	if err != nil {
		return GrowthResult{}, err
	}

	m := compounding.PeriodsPerYear()
	fvPrincipal := presentValue * math.Pow(1+nominal/m, m*years)

	n := contributionFreq.PeriodsPerYear() * years
	var fvContrib float64
	if contribRate == 0 {
		fvContrib = contribution * n
	} else {
		fvContrib = contribution * (math.Pow(1+contribRate, n) - 1) / contribRate
	}

	total := fvPrincipal + fvContrib
	contributed := contribution * n
	return GrowthResult{
		FutureValue:        total,
		TotalContributions: contributed,
		TotalInterest:      total - presentValue - contributed,
	}, nil
}

// PresentValue discounts a future value back over periods at
// ratePerPeriod. Direct algebraic inverse of lump-sum growth; no
// iteration involved. Periods may be fractional.
func PresentValue(futureValue, ratePerPeriod, periods float64) (float64, error) {
	if math.IsNaN(futureValue) || futureValue < 0 {
		return 0, errNegative("future_value")
	}
	if math.IsNaN(ratePerPeriod) || ratePerPeriod < 0 {
		return 0, errNegative("rate")
	}
	if math.IsNaN(periods) || periods <= 0 {
		return 0, errNonPositive("periods")
	}
	return futureValue / math.Pow(1+ratePerPeriod, periods), nil
}
