package loans

import (
	"math"

	"github.com/warp/finance-engine/fincalc"
)

// =============================================================================
// AUTO LEASE
// =============================================================================

// Lease computes a monthly auto-lease payment as the sum of three parts:
//
//	depreciation = (capCost - residual) / termMonths
//	finance      = (capCost + residual) * moneyFactor
//	tax          = (depreciation + finance) * salesTaxRate
//
// where capCost is the vehicle price minus the down payment. The finance
// charge is the lease-industry average-balance approximation, not an
// amortization; an annual rate is accepted and converted with the
// standard moneyFactor = APR/2400 rule.
func Lease(in LeaseInput) (LeaseResult, error) {
	if math.IsNaN(in.VehiclePrice) || in.VehiclePrice <= 0 {
		return LeaseResult{}, &fincalc.InputError{Field: "vehicle_price", Reason: "must be positive"}
	}
	if math.IsNaN(in.DownPayment) || in.DownPayment < 0 {
		return LeaseResult{}, &fincalc.InputError{Field: "down_payment", Reason: "must not be negative"}
	}
	if math.IsNaN(in.ResidualValue) || in.ResidualValue < 0 {
		return LeaseResult{}, &fincalc.InputError{Field: "residual_value", Reason: "must not be negative"}
	}
	if in.TermMonths <= 0 {
		return LeaseResult{}, &fincalc.InputError{Field: "term_months", Reason: "must be positive"}
	}
	if in.MoneyFactor < 0 || in.AnnualRate < 0 || math.IsNaN(in.MoneyFactor) || math.IsNaN(in.AnnualRate) {
		return LeaseResult{}, &fincalc.InputError{Field: "rate", Reason: "must not be negative"}
	}
	if in.SalesTaxRate < 0 || math.IsNaN(in.SalesTaxRate) {
		return LeaseResult{}, &fincalc.InputError{Field: "sales_tax_rate", Reason: "must not be negative"}
	}

	moneyFactor := in.MoneyFactor
	if moneyFactor == 0 && in.AnnualRate > 0 {
		moneyFactor = in.AnnualRate * 100 / 2400
	}

	capCost := in.VehiclePrice - in.DownPayment
	if capCost <= 0 {
		return LeaseResult{}, &fincalc.DomainError{Op: "lease", Detail: "down payment covers the entire vehicle price"}
	}
	if in.ResidualValue >= capCost {
		return LeaseResult{}, &fincalc.DomainError{Op: "lease", Detail: "residual value leaves nothing to depreciate"}
	}

	depreciation := (capCost - in.ResidualValue) / float64(in.TermMonths)
	finance := (capCost + in.ResidualValue) * moneyFactor
	base := depreciation + finance
	tax := base * in.SalesTaxRate
	monthly := base + tax

	return LeaseResult{
		DepreciationFee: fincalc.RoundCents(depreciation),
		FinanceFee:      fincalc.RoundCents(finance),
		BasePayment:     fincalc.RoundCents(base),
		SalesTax:        fincalc.RoundCents(tax),
		MonthlyPayment:  fincalc.RoundCents(monthly),
		TotalCost:       fincalc.RoundCents(monthly*float64(in.TermMonths) + in.DownPayment),
	}, nil
}
