/*
Package savings provides the investing-side calculators of the hub.

PURPOSE:
  Compound growth, investment growth with periodic contributions, SIP,
  present value, and annuity payout. All of them are thin assemblies over
  fincalc's growth and annuity engines; they exist so each form keeps its
  own defaults (SIP pins contributions to monthly) and result shape.

SEE ALSO:
  - fincalc/growth.go, fincalc/annuity.go: The underlying formulas
  - loans/: The borrowing-side calculators
*/
package savings

import (
	"github.com/warp/finance-engine/fincalc"
)

// GrowthInput describes a lump sum plus an optional contribution stream.
// Compounding defaults to annually, contributions to monthly; the two
// frequencies are independent.
type GrowthInput struct {
	InitialAmount    float64           `json:"initial_amount"`
	AnnualRate       float64           `json:"annual_rate"`
	Years            float64           `json:"years"`
	Compounding      fincalc.Frequency `json:"compounding,omitempty"`
	Contribution     float64           `json:"contribution,omitempty"`
	ContributionFreq fincalc.Frequency `json:"contribution_frequency,omitempty"`
}

// GrowthResult mirrors fincalc.GrowthResult with cent rounding applied.
type GrowthResult struct {
	FutureValue        float64 `json:"future_value"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
}

// SIPInput is a systematic investment plan: monthly contributions only.
type SIPInput struct {
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRate          float64 `json:"annual_rate"`
	Years               float64 `json:"years"`
}

type PresentValueInput struct {
	FutureValue float64           `json:"future_value"`
	AnnualRate  float64           `json:"annual_rate"`
	Years       float64           `json:"years"`
	Compounding fincalc.Frequency `json:"compounding,omitempty"`
}

type PresentValueResult struct {
	PresentValue float64 `json:"present_value"`
	Discount     float64 `json:"discount"`
}

// AnnuityPayoutInput describes draining a savings pool with level draws.
type AnnuityPayoutInput struct {
	Pool        float64           `json:"pool"`
	AnnualRate  float64           `json:"annual_rate"`
	Years       float64           `json:"years"`
	PayoutFreq  fincalc.Frequency `json:"payout_frequency,omitempty"`
	Compounding fincalc.Frequency `json:"compounding,omitempty"`
}

type AnnuityPayoutResult struct {
	Payout       float64 `json:"payout"`
	Periods      int     `json:"periods"`
	TotalPaidOut float64 `json:"total_paid_out"`
	TotalGrowth  float64 `json:"total_growth"`
}
