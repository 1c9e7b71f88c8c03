/*
Package loans provides the borrowing-side calculators of the hub.

PURPOSE:
  Every calculator that turns a debt into numbers lives here: fixed-loan
  payments (mortgage, personal, auto, student, EMI), auto-lease payment
  composition, fee-adjusted APR, and credit-card payoff. Each calculator
  assembles validated inputs, delegates the math to fincalc, and rounds
  the monetary results to cents.

KEY DIFFERENCES BETWEEN THE CALCULATORS:
  1. Fixed loans: payment is solved-for, term is known (fincalc.LevelPayment)
  2. Card payoff: payment is user-chosen, term is the unknown
     (fincalc.SimulatePayoff) and may provably never arrive
  3. APR: the rate is the unknown (fincalc.ApproximateAPR)
  4. Lease: three additive components, only one of which amortizes

UNITS:
  Rates are decimal fractions (0.06 = 6%). Terms are years unless a
  field says months. Money is rounded to cents on the way out.

SEE ALSO:
  - fincalc/: The underlying engines
  - savings/: The investing-side calculators
*/
package loans

import (
	"github.com/warp/finance-engine/fincalc"
)

// =============================================================================
// FIXED LOAN - Level-payment amortizing loan
// =============================================================================

// LoanInput describes a fully amortizing fixed-rate loan. Compounding
// and PaymentFreq default to monthly, which is what every retail loan
// form collects; they stay configurable because the two frequencies are
// independent in the engine.
type LoanInput struct {
	Principal    float64           `json:"principal"`
	AnnualRate   float64           `json:"annual_rate"`
	TermYears    float64           `json:"term_years"`
	Compounding  fincalc.Frequency `json:"compounding,omitempty"`
	PaymentFreq  fincalc.Frequency `json:"payment_frequency,omitempty"`
	WithSchedule bool              `json:"with_schedule,omitempty"`
}

// LoanResult is the computed payment plus lifetime totals.
type LoanResult struct {
	Payment       float64                 `json:"payment"`
	Periods       int                     `json:"periods"`
	TotalPaid     float64                 `json:"total_paid"`
	TotalInterest float64                 `json:"total_interest"`
	Schedule      []fincalc.ScheduleEntry `json:"schedule,omitempty"`
}

// =============================================================================
// AUTO LEASE - Depreciation + finance charge + sales tax
// =============================================================================

// LeaseInput describes a closed-end auto lease. MoneyFactor is the
// lease-industry rate form (APR / 2400); exactly one of MoneyFactor or
// AnnualRate must be positive.
type LeaseInput struct {
	VehiclePrice  float64 `json:"vehicle_price"`
	DownPayment   float64 `json:"down_payment"`
	ResidualValue float64 `json:"residual_value"`
	TermMonths    int     `json:"term_months"`
	MoneyFactor   float64 `json:"money_factor,omitempty"`
	AnnualRate    float64 `json:"annual_rate,omitempty"`
	SalesTaxRate  float64 `json:"sales_tax_rate,omitempty"`
}

// LeaseResult breaks the monthly payment into its three components.
type LeaseResult struct {
	DepreciationFee float64 `json:"depreciation_fee"`
	FinanceFee      float64 `json:"finance_fee"`
	BasePayment     float64 `json:"base_payment"`
	SalesTax        float64 `json:"sales_tax"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	TotalCost       float64 `json:"total_cost"`
}

// =============================================================================
// APR - Fee-adjusted effective borrowing rate
// =============================================================================

type APRInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Fees       float64 `json:"fees"`
	TermYears  float64 `json:"term_years"`
}

type APRResult struct {
	APR            float64 `json:"apr"`
	NetReceived    float64 `json:"net_received"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// =============================================================================
// CREDIT CARD PAYOFF
// =============================================================================

type CardPayoffInput struct {
	Balance      float64 `json:"balance"`
	AnnualRate   float64 `json:"annual_rate"`
	Payment      float64 `json:"payment"`
	WithSchedule bool    `json:"with_schedule,omitempty"`
}

type CardPayoffResult struct {
	Months        int                     `json:"months"`
	TotalInterest float64                 `json:"total_interest"`
	TotalPaid     float64                 `json:"total_paid"`
	Schedule      []fincalc.ScheduleEntry `json:"schedule,omitempty"`
}
