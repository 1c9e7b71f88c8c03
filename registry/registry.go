/*
Package registry provides the calculator catalog and JSON dispatch.

PURPOSE:
  The hub exposes many single-purpose calculators behind one transport.
  This package converts a calculator id plus a JSON payload into a typed
  call on the right domain package, the way an admin UI or API gateway
  would want it: discoverable catalog, one dispatch point, typed errors.

CATALOG SHAPE:
  Each calculator has an id (URL-safe slug), a display name, a category
  for grouping in the UI, and a Compute function that decodes its own
  input type. Several ids intentionally share an implementation - the
  mortgage, personal-loan, auto-loan, student-loan and EMI forms are all
  the fixed-loan payment routine with different copy.

USAGE:
  reg := registry.New(tableStore)
  desc, ok := reg.Get("mortgage")
  out, err := desc.Compute(ctx, json.RawMessage(`{"principal":200000,...}`))

SEE ALSO:
  - api/: The HTTP transport over this catalog
  - loans/, savings/, retirement/, health/: The implementations
*/
package registry

import (
	"context"
	"encoding/json"

	"github.com/warp/finance-engine/fincalc"
	"github.com/warp/finance-engine/health"
	"github.com/warp/finance-engine/loans"
	"github.com/warp/finance-engine/refdata"
	"github.com/warp/finance-engine/retirement"
	"github.com/warp/finance-engine/savings"
)

// =============================================================================
// CATALOG TYPES
// =============================================================================

// Descriptor describes one calculator in the catalog.
type Descriptor struct {
	ID       string
	Name     string
	Category string
	Compute  func(ctx context.Context, input json.RawMessage) (any, error)
}

// Registry is the immutable calculator catalog. Built once at startup;
// safe for concurrent readers.
type Registry struct {
	order []string
	byID  map[string]Descriptor
}

// Categories used for UI grouping.
const (
	CategoryLoans      = "loans"
	CategorySavings    = "savings"
	CategoryRetirement = "retirement"
	CategoryHealth     = "health"
)

// =============================================================================
// CONSTRUCTION
// =============================================================================

// New builds the full catalog. The refdata store backs the calculators
// that resolve published tables (currently RMD).
func New(tables refdata.Store) *Registry {
	rmd := retirement.NewCalculator(tables)

	r := &Registry{byID: make(map[string]Descriptor)}

	// Fixed-loan forms: one routine, several labels.
	r.add(Descriptor{ID: "mortgage", Name: "Mortgage Payment", Category: CategoryLoans, Compute: typed(loans.Payment)})
	r.add(Descriptor{ID: "personal-loan", Name: "Personal Loan", Category: CategoryLoans, Compute: typed(loans.Payment)})
	r.add(Descriptor{ID: "auto-loan", Name: "Auto Loan", Category: CategoryLoans, Compute: typed(loans.Payment)})
	r.add(Descriptor{ID: "student-loan", Name: "Student Loan", Category: CategoryLoans, Compute: typed(loans.Payment)})
	r.add(Descriptor{ID: "emi", Name: "EMI", Category: CategoryLoans, Compute: typed(loans.Payment)})

	r.add(Descriptor{ID: "auto-lease", Name: "Auto Lease", Category: CategoryLoans, Compute: typed(loans.Lease)})
	r.add(Descriptor{ID: "apr", Name: "APR", Category: CategoryLoans, Compute: typed(loans.APR)})
	r.add(Descriptor{ID: "credit-card-payoff", Name: "Credit Card Payoff", Category: CategoryLoans, Compute: typed(loans.CardPayoff)})

	r.add(Descriptor{ID: "future-value", Name: "Future Value", Category: CategorySavings, Compute: typed(savings.Growth)})
	r.add(Descriptor{ID: "investment-growth", Name: "Investment Growth", Category: CategorySavings, Compute: typed(savings.Growth)})
	r.add(Descriptor{ID: "sip", Name: "SIP", Category: CategorySavings, Compute: typed(savings.SIP)})
	r.add(Descriptor{ID: "present-value", Name: "Present Value", Category: CategorySavings, Compute: typed(savings.PresentValue)})
	r.add(Descriptor{ID: "annuity-payout", Name: "Annuity Payout", Category: CategorySavings, Compute: typed(savings.AnnuityPayout)})

	r.add(Descriptor{ID: "rmd", Name: "Required Minimum Distribution", Category: CategoryRetirement,
		Compute: func(ctx context.Context, input json.RawMessage) (any, error) {
			var in retirement.RMDInput
			if err := decode(input, &in); err != nil {
				return nil, err
			}
			return rmd.RMD(ctx, in)
		}})

	r.add(Descriptor{ID: "bmi", Name: "BMI", Category: CategoryHealth, Compute: typed(health.BMI)})
	r.add(Descriptor{ID: "body-fat", Name: "Body Fat %", Category: CategoryHealth, Compute: typed(health.BodyFat)})
	r.add(Descriptor{ID: "bac", Name: "Blood Alcohol Content", Category: CategoryHealth, Compute: typed(health.BAC)})

	return r
}

func (r *Registry) add(d Descriptor) {
	r.order = append(r.order, d.ID)
	r.byID[d.ID] = d
}

// =============================================================================
// LOOKUP
// =============================================================================

// Get returns the descriptor for id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// List returns all descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// =============================================================================
// DISPATCH HELPERS
// =============================================================================

// typed adapts a plain calculator function into a JSON Compute.
func typed[In, Out any](fn func(In) (Out, error)) func(context.Context, json.RawMessage) (any, error) {
	return func(_ context.Context, input json.RawMessage) (any, error) {
		var in In
		if err := decode(input, &in); err != nil {
			return nil, err
		}
		return fn(in)
	}
}

// decode turns malformed payloads into the engine's invalid-input error
// so transports map every caller mistake the same way.
func decode(input json.RawMessage, v any) error {
	if len(input) == 0 {
		input = json.RawMessage(`{}`)
	}
	if err := json.Unmarshal(input, v); err != nil {
		return &fincalc.InputError{Field: "body", Reason: err.Error()}
	}
	return nil
}
