/*
Package retirement provides the retirement-account calculators of the hub.

PURPOSE:
  Currently the Required Minimum Distribution calculator: divide the
  prior year-end account balance by the age-indexed distribution period
  from the IRS Uniform Lifetime Table. The table is reference data loaded
  through refdata.Store so deployments can ship updated tables without a
  code change; the published table is embedded as the seed.

DISCLAIMER SCOPE:
  This computes the uniform-table case only. Spousal-exception tables,
  inherited accounts, and tax treatment are intentionally out of scope.

SEE ALSO:
  - table.go: The embedded Uniform Lifetime Table
  - fincalc/lookup.go: Boundary-clamped table resolution
*/
package retirement

import (
	"context"
	"math"

	"github.com/warp/finance-engine/fincalc"
	"github.com/warp/finance-engine/refdata"
)

// RMDInput is the age at year end and the prior year-end balance.
type RMDInput struct {
	Age            int     `json:"age"`
	AccountBalance float64 `json:"account_balance"`
}

type RMDResult struct {
	Divisor      float64 `json:"divisor"`
	Distribution float64 `json:"distribution"`
}

// Calculator resolves divisor tables through a refdata store.
type Calculator struct {
	Tables refdata.Store
}

func NewCalculator(tables refdata.Store) *Calculator {
	return &Calculator{Tables: tables}
}

// RMD computes the required minimum distribution for the given age and
// balance. Ages below the table's first row have no RMD and are rejected
// as a domain error; ages past the last row clamp to the final divisor.
func (c *Calculator) RMD(ctx context.Context, in RMDInput) (RMDResult, error) {
	if math.IsNaN(in.AccountBalance) || in.AccountBalance <= 0 {
		return RMDResult{}, &fincalc.InputError{Field: "account_balance", Reason: "must be positive"}
	}
	if in.Age <= 0 {
		return RMDResult{}, &fincalc.InputError{Field: "age", Reason: "must be positive"}
	}

	table, err := c.Tables.GetTable(ctx, UniformLifetimeTableName)
	if err != nil {
		return RMDResult{}, err
	}
	if in.Age < table.MinKey() {
		return RMDResult{}, &fincalc.DomainError{
			Op:     "rmd",
			Detail: "no required distribution below the table's starting age",
		}
	}

	divisor, err := fincalc.Lookup(table.Values, in.Age, table.MaxKey)
	if err != nil {
		return RMDResult{}, err
	}
	return RMDResult{
		Divisor:      divisor,
		Distribution: fincalc.RoundCents(in.AccountBalance / divisor),
	}, nil
}
