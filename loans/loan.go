package loans

import (
	"math"

	"github.com/warp/finance-engine/fincalc"
)

// =============================================================================
// FIXED LOAN PAYMENT
// =============================================================================

// Payment computes the level payment for a fully amortizing fixed-rate
// loan. Mortgage, personal, auto, student and EMI calculators are all
// this routine with different labels; the registry exposes them as
// separate entries so each form keeps its own defaults and copy.
func Payment(in LoanInput) (LoanResult, error) {
	in = withLoanDefaults(in)

	rate, err := fincalc.PerPeriodRate(in.AnnualRate, in.Compounding, in.PaymentFreq)
	if err != nil {
		return LoanResult{}, err
	}
	if math.IsNaN(in.TermYears) || in.TermYears <= 0 {
		return LoanResult{}, &fincalc.InputError{Field: "term_years", Reason: "must be positive"}
	}
	periods := int(math.Round(in.TermYears * in.PaymentFreq.PeriodsPerYear()))
	if periods <= 0 {
		return LoanResult{}, &fincalc.InputError{Field: "term_years", Reason: "term shorter than one payment period"}
	}

	result := LoanResult{Periods: periods}
	if in.WithSchedule {
		payment, entries, err := fincalc.AmortizationSchedule(in.Principal, rate, periods)
		if err != nil {
			return LoanResult{}, err
		}
		result.Payment = payment
		result.Schedule = make([]fincalc.ScheduleEntry, len(entries))
		for i, e := range entries {
			result.Schedule[i] = fincalc.RoundEntry(e)
		}
	} else {
		payment, err := fincalc.LevelPayment(in.Principal, rate, periods)
		if err != nil {
			return LoanResult{}, err
		}
		result.Payment = payment
	}

	total := result.Payment * float64(periods)
	result.TotalPaid = fincalc.RoundCents(total)
	result.TotalInterest = fincalc.RoundCents(total - in.Principal)
	result.Payment = fincalc.RoundCents(result.Payment)
	return result, nil
}

func withLoanDefaults(in LoanInput) LoanInput {
	if in.Compounding == "" {
		in.Compounding = fincalc.Monthly
	}
	if in.PaymentFreq == "" {
		in.PaymentFreq = fincalc.Monthly
	}
	return in
}
