package fincalc

import "math"

// =============================================================================
// PAYOFF SIMULATION - Fixed payment against a revolving balance
// =============================================================================

const (
	// payoffBalanceEpsilon treats residual balances below half a cent as
	// fully paid, absorbing floating-point drift across many months.
	payoffBalanceEpsilon = 0.005

	// payoffMaxMonths caps the simulation at 100 years. The interest-only
	// pre-check should make this unreachable; the cap is kept so the loop
	// terminates even if an edge case slips past the pre-check.
	payoffMaxMonths = 1200
)

// SimulatePayoff runs a month-by-month paydown of a revolving balance
// under a fixed payment and reports how long it takes and what it costs.
//
// Unlike LevelPayment, the payment here is user-chosen rather than
// solved-for, so the month count is the unknown and the simulation must
// detect the case where the balance can never reach zero. A payment that
// does not exceed the first month's interest is reported as
// ErrNonConverging before any simulation runs.
func SimulatePayoff(balance, annualRate, payment float64) (PayoffResult, error) {
	res, _, err := simulatePayoff(balance, annualRate, payment, false)
	return res, err
}

// SimulatePayoffSchedule is SimulatePayoff plus the full month-by-month
// schedule.
func SimulatePayoffSchedule(balance, annualRate, payment float64) (PayoffResult, []ScheduleEntry, error) {
	return simulatePayoff(balance, annualRate, payment, true)
}

func simulatePayoff(balance, annualRate, payment float64, withSchedule bool) (PayoffResult, []ScheduleEntry, error) {
	if math.IsNaN(balance) || balance <= 0 {
		return PayoffResult{}, nil, errNonPositive("balance")
	}
	if math.IsNaN(annualRate) || annualRate < 0 {
		return PayoffResult{}, nil, errNegative("rate")
	}
	if math.IsNaN(payment) || payment <= 0 {
		return PayoffResult{}, nil, errNonPositive("payment")
	}

	monthlyRate := annualRate / 12

	// A payment that does not clear the first month's interest by more
	// than the balance epsilon can never meaningfully shrink the balance.
	if monthlyRate > 0 && payment-balance*monthlyRate <= payoffBalanceEpsilon {
		return PayoffResult{}, nil, &NonConvergingError{
			Op:     "payoff simulation",
			Detail: "payment does not exceed monthly interest",
		}
	}

	if monthlyRate == 0 {
		months := int(math.Ceil(balance / payment))
		res := PayoffResult{Months: months, TotalInterest: 0, TotalPaid: balance}
		if !withSchedule {
			return res, nil, nil
		}
		entries := make([]ScheduleEntry, 0, months)
		remaining := balance
		for m := 1; m <= months; m++ {
			due := math.Min(payment, remaining)
			remaining -= due
			entries = append(entries, ScheduleEntry{
				Period: m, Payment: due, Principal: due, Balance: remaining,
			})
		}
		return res, entries, nil
	}

	var (
		entries       []ScheduleEntry
		totalInterest float64
		totalPaid     float64
		months        int
	)
	for balance > payoffBalanceEpsilon {
		months++
		if months > payoffMaxMonths {
			return PayoffResult{}, nil, &NonConvergingError{
				Op:         "payoff simulation",
				Iterations: payoffMaxMonths,
				Detail:     "balance not retired within 100 years",
			}
		}

		interest := balance * monthlyRate
		due := payment
		if due > balance+interest {
			// Final month: pay exactly what remains.
			due = balance + interest
		}
		principalPaid := due - interest
		balance -= principalPaid
		totalInterest += interest
		totalPaid += due

		if withSchedule {
			entries = append(entries, ScheduleEntry{
				Period:    months,
				Payment:   due,
				Interest:  interest,
				Principal: principalPaid,
				Balance:   math.Max(balance, 0),
			})
		}
	}

	return PayoffResult{
		Months:        months,
		TotalInterest: totalInterest,
		TotalPaid:     totalPaid,
	}, entries, nil
}
