/*
Package health provides the body-metric calculators of the hub.

PURPOSE:
  BMI, body-fat percentage (US Navy circumference method), and blood
  alcohol content (Widmark formula). These share the engine's error
  discipline: impossible measurement combinations are domain errors
  guarded before the offending operation, never NaN results.

DISCLAIMER SCOPE:
  Estimation formulas, not medical advice. The BAC figure in particular
  is a population-average model and must not be used to decide whether
  anyone can drive.

SEE ALSO:
  - fincalc/errors.go: The shared error taxonomy
*/
package health

import (
	"math"

	"github.com/warp/finance-engine/fincalc"
)

// =============================================================================
// BMI
// =============================================================================

type BMIInput struct {
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
}

type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// BMI computes weight/height² and the standard WHO category bands.
func BMI(in BMIInput) (BMIResult, error) {
	if math.IsNaN(in.WeightKg) || in.WeightKg <= 0 {
		return BMIResult{}, &fincalc.InputError{Field: "weight_kg", Reason: "must be positive"}
	}
	if math.IsNaN(in.HeightCm) || in.HeightCm <= 0 {
		return BMIResult{}, &fincalc.InputError{Field: "height_cm", Reason: "must be positive"}
	}

	meters := in.HeightCm / 100
	bmi := in.WeightKg / (meters * meters)

	category := "normal"
	switch {
	case bmi < 18.5:
		category = "underweight"
	case bmi >= 30:
		category = "obese"
	case bmi >= 25:
		category = "overweight"
	}
	return BMIResult{BMI: math.Round(bmi*10) / 10, Category: category}, nil
}

// =============================================================================
// BODY FAT - US Navy circumference method
// =============================================================================

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

type BodyFatInput struct {
	Sex      Sex     `json:"sex"`
	HeightCm float64 `json:"height_cm"`
	NeckCm   float64 `json:"neck_cm"`
	WaistCm  float64 `json:"waist_cm"`
	HipCm    float64 `json:"hip_cm,omitempty"` // Required for female
}

type BodyFatResult struct {
	BodyFatPercent float64 `json:"body_fat_percent"`
}

// BodyFat estimates body-fat percentage from tape measurements using the
// US Navy circumference formulas (centimeter form). The log10 arguments
// are guarded: a waist that does not exceed the neck (plus hip for the
// female formula) is a domain error, not a NaN.
func BodyFat(in BodyFatInput) (BodyFatResult, error) {
	if in.Sex != Male && in.Sex != Female {
		return BodyFatResult{}, &fincalc.InputError{Field: "sex", Reason: `must be "male" or "female"`}
	}
	for field, v := range map[string]float64{
		"height_cm": in.HeightCm, "neck_cm": in.NeckCm, "waist_cm": in.WaistCm,
	} {
		if math.IsNaN(v) || v <= 0 {
			return BodyFatResult{}, &fincalc.InputError{Field: field, Reason: "must be positive"}
		}
	}

	var pct float64
	if in.Sex == Male {
		if in.WaistCm <= in.NeckCm {
			return BodyFatResult{}, &fincalc.DomainError{Op: "body fat", Detail: "waist must exceed neck circumference"}
		}
		pct = 495/(1.0324-0.19077*math.Log10(in.WaistCm-in.NeckCm)+0.15456*math.Log10(in.HeightCm)) - 450
	} else {
		if math.IsNaN(in.HipCm) || in.HipCm <= 0 {
			return BodyFatResult{}, &fincalc.InputError{Field: "hip_cm", Reason: "must be positive"}
		}
		if in.WaistCm+in.HipCm <= in.NeckCm {
			return BodyFatResult{}, &fincalc.DomainError{Op: "body fat", Detail: "waist plus hip must exceed neck circumference"}
		}
		pct = 495/(1.29579-0.35004*math.Log10(in.WaistCm+in.HipCm-in.NeckCm)+0.22100*math.Log10(in.HeightCm)) - 450
	}

	return BodyFatResult{BodyFatPercent: math.Round(pct*10) / 10}, nil
}

// =============================================================================
// BAC - Widmark formula
// =============================================================================

type BACInput struct {
	Sex            Sex     `json:"sex"`
	WeightKg       float64 `json:"weight_kg"`
	StandardDrinks float64 `json:"standard_drinks"`
	Hours          float64 `json:"hours"`
}

type BACResult struct {
	BAC float64 `json:"bac"`
}

const (
	gramsPerStandardDrink = 14.0
	eliminationPerHour    = 0.015
	widmarkMale           = 0.68
	widmarkFemale         = 0.55
)

// BAC estimates blood alcohol content (g/dL, the familiar 0.08-style
// number) with the Widmark formula: alcohol mass over body water mass,
// less a fixed elimination rate per hour. Floors at zero once
// elimination catches up.
func BAC(in BACInput) (BACResult, error) {
	if in.Sex != Male && in.Sex != Female {
		return BACResult{}, &fincalc.InputError{Field: "sex", Reason: `must be "male" or "female"`}
	}
	if math.IsNaN(in.WeightKg) || in.WeightKg <= 0 {
		return BACResult{}, &fincalc.InputError{Field: "weight_kg", Reason: "must be positive"}
	}
	if math.IsNaN(in.StandardDrinks) || in.StandardDrinks < 0 {
		return BACResult{}, &fincalc.InputError{Field: "standard_drinks", Reason: "must not be negative"}
	}
	if math.IsNaN(in.Hours) || in.Hours < 0 {
		return BACResult{}, &fincalc.InputError{Field: "hours", Reason: "must not be negative"}
	}

	r := widmarkMale
	if in.Sex == Female {
		r = widmarkFemale
	}

	grams := in.StandardDrinks * gramsPerStandardDrink
	bac := grams/(in.WeightKg*1000*r)*100 - eliminationPerHour*in.Hours
	if bac < 0 {
		bac = 0
	}
	return BACResult{BAC: math.Round(bac*1000) / 1000}, nil
}
