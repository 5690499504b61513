package pricing

import (
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PriceChangeSource identifies how a selling price was derived
type PriceChangeSource string

const (
	// PriceSourceAuto passes the catalog retail price through unchanged
	PriceSourceAuto PriceChangeSource = "AUTO"
	// PriceSourceMargin derives the selling price from the purchase price plus a margin percent
	PriceSourceMargin PriceChangeSource = "MARGIN"
	// PriceSourceDiscount derives the selling price from the retail price minus a discount percent
	PriceSourceDiscount PriceChangeSource = "DISCOUNT"
	// PriceSourceManual uses a caller-supplied value verbatim
	PriceSourceManual PriceChangeSource = "MANUAL"
)

// String returns the string representation of the price change source
func (s PriceChangeSource) String() string {
	return string(s)
}

// IsValid reports whether the source is one of the known modes
func (s PriceChangeSource) IsValid() bool {
	switch s {
	case PriceSourceAuto, PriceSourceMargin, PriceSourceDiscount, PriceSourceManual:
		return true
	}
	return false
}

// PriceInput carries the catalog prices a selling price is computed from
type PriceInput struct {
	RetailPrice   decimal.Decimal
	PurchasePrice decimal.Decimal
}

// ComputeSellingPrice produces a selling price from catalog prices and the
// selected computation mode. Monetary results are rounded half-up to 2 places.
//
//	AUTO:     retail price unchanged
//	MARGIN:   purchase * (1 + margin/100)
//	DISCOUNT: retail * (1 - discount/100)
//	MANUAL:   the supplied manual value verbatim
func ComputeSellingPrice(in PriceInput, source PriceChangeSource, marginPercent, discountPercent, manualValue *decimal.Decimal) (decimal.Decimal, error) {
	switch source {
	case PriceSourceAuto:
		return in.RetailPrice.Round(2), nil
	case PriceSourceMargin:
		if marginPercent == nil {
			return decimal.Zero, shared.NewDomainError("MISSING_MARGIN", "Margin percent is required for MARGIN pricing")
		}
		factor := decimal.NewFromInt(1).Add(marginPercent.Div(hundred))
		return in.PurchasePrice.Mul(factor).Round(2), nil
	case PriceSourceDiscount:
		if discountPercent == nil {
			return decimal.Zero, shared.NewDomainError("MISSING_DISCOUNT", "Discount percent is required for DISCOUNT pricing")
		}
		return in.RetailPrice.Mul(factor(*discountPercent)).Round(2), nil
	case PriceSourceManual:
		if manualValue == nil {
			return decimal.Zero, shared.NewDomainError("MISSING_MANUAL_VALUE", "Manual value is required for MANUAL pricing")
		}
		return manualValue.Round(2), nil
	default:
		return decimal.Zero, shared.NewDomainError("UNKNOWN_PRICE_SOURCE",
			"Unknown price change source: "+string(source))
	}
}

// NoDiscountMarker is rendered in place of a percent when no discount is configured
const NoDiscountMarker = "-"

// FormatPercent renders a percentage rounded half-up to 1 decimal place
func FormatPercent(p decimal.Decimal) string {
	return p.Round(1).StringFixed(1)
}

// FormatDiscountPercent renders a discount percent for display. A nil discount
// means "no discount configured" and renders as the sentinel marker; an
// explicit zero still renders as a number so the two cases stay distinguishable.
func FormatDiscountPercent(p *decimal.Decimal) string {
	if p == nil {
		return NoDiscountMarker
	}
	return FormatPercent(*p)
}
