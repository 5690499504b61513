package pricing

import (
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DiscountMethod selects how the four component discounts are combined
// into one effective discount percent.
type DiscountMethod string

const (
	// DiscountMethodSum adds all four components without cascading.
	DiscountMethodSum DiscountMethod = "SUMARYCZNY"
	// DiscountMethodCascadeA cascades basic, additional and skonto; promotion is excluded.
	DiscountMethodCascadeA DiscountMethod = "KASKADOWO_A"
	// DiscountMethodCascadeB cascades all four components in order basic, additional, promotion, skonto.
	DiscountMethodCascadeB DiscountMethod = "KASKADOWO_B"
	// DiscountMethodCascadeC cascades basic, then subtracts additional+promotion in one step, then cascades skonto.
	DiscountMethodCascadeC DiscountMethod = "KASKADOWO_C"
	// DiscountMethodCascadeD subtracts basic+additional+promotion as one block, then cascades skonto.
	DiscountMethodCascadeD DiscountMethod = "KASKADOWO_D"
)

// String returns the string representation of the discount method
func (m DiscountMethod) String() string {
	return string(m)
}

// IsValid reports whether the method is one of the known combination methods
func (m DiscountMethod) IsValid() bool {
	switch m {
	case DiscountMethodSum, DiscountMethodCascadeA, DiscountMethodCascadeB,
		DiscountMethodCascadeC, DiscountMethodCascadeD:
		return true
	}
	return false
}

var (
	hundred = decimal.NewFromInt(100)
)

// DiscountComponents holds the four layered discount percentages of a price list entry
type DiscountComponents struct {
	Basic      decimal.Decimal
	Additional decimal.Decimal
	Promotion  decimal.Decimal
	Skonto     decimal.Decimal
}

// IsZero reports whether no component discount is configured at all
func (c DiscountComponents) IsZero() bool {
	return c.Basic.IsZero() && c.Additional.IsZero() && c.Promotion.IsZero() && c.Skonto.IsZero()
}

// ResolveEffectiveDiscount combines the four component discounts into one
// effective discount percent using the given method.
//
// All formulas operate on a notional base of 100 currency units; the result is
// expressed back as a discount percent (100 - remaining value). A cascade that
// drives the remaining value below zero is clamped to a 100% discount and
// reported through the clamped flag so callers can log the anomaly; it is
// never an error, because business users may legitimately configure extreme
// discount stacks.
func ResolveEffectiveDiscount(c DiscountComponents, method DiscountMethod) (effective decimal.Decimal, clamped bool, err error) {
	if !method.IsValid() {
		return decimal.Zero, false, shared.NewDomainError("UNKNOWN_DISCOUNT_METHOD",
			"Unknown discount calculation method: "+string(method))
	}

	var remaining decimal.Decimal
	switch method {
	case DiscountMethodSum:
		remaining = hundred.Sub(c.Basic).Sub(c.Additional).Sub(c.Promotion).Sub(c.Skonto)
	case DiscountMethodCascadeA:
		remaining = hundred.
			Mul(factor(c.Basic)).
			Mul(factor(c.Additional)).
			Mul(factor(c.Skonto))
	case DiscountMethodCascadeB:
		remaining = hundred.
			Mul(factor(c.Basic)).
			Mul(factor(c.Additional)).
			Mul(factor(c.Promotion)).
			Mul(factor(c.Skonto))
	case DiscountMethodCascadeC:
		remaining = hundred.Mul(factor(c.Basic))
		remaining = remaining.Sub(remaining.Mul(c.Additional.Add(c.Promotion)).Div(hundred))
		remaining = remaining.Mul(factor(c.Skonto))
	case DiscountMethodCascadeD:
		remaining = hundred.
			Mul(factor(c.Basic.Add(c.Additional).Add(c.Promotion))).
			Mul(factor(c.Skonto))
	}

	if remaining.IsNegative() {
		remaining = decimal.Zero
		clamped = true
	}

	return hundred.Sub(remaining), clamped, nil
}

// factor converts a discount percent into its remaining-value multiplier (1 - p/100)
func factor(percent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(percent.Div(hundred))
}
