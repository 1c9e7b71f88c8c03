package loans

import (
	"github.com/warp/finance-engine/fincalc"
)

// =============================================================================
// CREDIT CARD PAYOFF
// =============================================================================

// CardPayoff simulates paying a fixed amount against a revolving card
// balance. The interesting failure mode is structural: a payment at or
// below the monthly interest can never retire the balance, and the
// engine reports that as fincalc.ErrNonConverging so the form can tell
// the user to raise the payment rather than showing a generic error.
func CardPayoff(in CardPayoffInput) (CardPayoffResult, error) {
	if in.WithSchedule {
		res, entries, err := fincalc.SimulatePayoffSchedule(in.Balance, in.AnnualRate, in.Payment)
		if err != nil {
			return CardPayoffResult{}, err
		}
		schedule := make([]fincalc.ScheduleEntry, len(entries))
		for i, e := range entries {
			schedule[i] = fincalc.RoundEntry(e)
		}
		return CardPayoffResult{
			Months:        res.Months,
			TotalInterest: fincalc.RoundCents(res.TotalInterest),
			TotalPaid:     fincalc.RoundCents(res.TotalPaid),
			Schedule:      schedule,
		}, nil
	}

	res, err := fincalc.SimulatePayoff(in.Balance, in.AnnualRate, in.Payment)
	if err != nil {
		return CardPayoffResult{}, err
	}
	return CardPayoffResult{
		Months:        res.Months,
		TotalInterest: fincalc.RoundCents(res.TotalInterest),
		TotalPaid:     fincalc.RoundCents(res.TotalPaid),
	}, nil
}
