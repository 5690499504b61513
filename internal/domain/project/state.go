package project

import (
	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// manualTolerance guards the manual flags against floating-point noise:
// an override within one grosz of the freshly computed baseline is not a
// manual change.
var manualTolerance = decimal.NewFromFloat(0.01)

// State is the effective pricing of one product in a project, derived per
// request by merging draft, saved and catalog values. It is ephemeral and
// never persisted.
type State struct {
	ProductID     uuid.UUID
	RetailPrice   decimal.Decimal
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Quantity      decimal.Decimal

	RetailManual   bool
	PurchaseManual bool
	SellingManual  bool
	QuantityManual bool

	ChangeSource pricing.PriceChangeSource
}

// IsManualPrice reports whether any price field deviates from the baseline
func (s State) IsManualPrice() bool {
	return s.RetailManual || s.PurchaseManual || s.SellingManual
}

// IsManualQuantity reports whether the quantity deviates from the baseline
func (s State) IsManualQuantity() bool {
	return s.QuantityManual
}

// IsActive reports whether the product belongs to the offer at all
func (s State) IsActive() bool {
	return pricing.IsActiveQuantity(s.Quantity)
}

// ResolveState merges, independently per field, the three tiers of pricing
// state for one product:
//
//  1. a draft override, when present, is authoritative
//  2. otherwise a saved override that differs from the baseline wins
//  3. otherwise the freshly computed AUTO baseline applies
//
// categoryDraft, when present, is the category-wide margin/discount slider
// row; it shifts the AUTO selling baseline for every product of the category
// without being tied to one product.
func ResolveState(product *catalog.Product, saved *ProjectProduct, draft, categoryDraft *DraftChange) (State, error) {
	retailBase := product.RetailPrice.Round(2)
	purchaseBase := product.PurchasePrice.Round(2)

	sellingBase, source, err := sellingBaseline(product, categoryDraft)
	if err != nil {
		return State{}, err
	}

	s := State{
		ProductID:    product.ID,
		ChangeSource: source,
	}

	var savedRetail, savedPurchase, savedSelling, savedQuantity *decimal.Decimal
	if saved != nil {
		savedRetail = &saved.RetailPrice
		savedPurchase = &saved.PurchasePrice
		savedSelling = &saved.SellingPrice
		savedQuantity = &saved.Quantity
		if source == pricing.PriceSourceAuto {
			s.ChangeSource = saved.PriceChangeSource
		}
	}

	var draftRetail, draftPurchase, draftSelling, draftQuantity *decimal.Decimal
	if draft != nil {
		draftRetail = draft.RetailPrice
		draftPurchase = draft.PurchasePrice
		draftSelling = draft.SellingPrice
		draftQuantity = draft.Quantity
		s.ChangeSource = draft.PriceChangeSource
	}

	s.RetailPrice, s.RetailManual = resolveField(draftRetail, savedRetail, retailBase)
	s.PurchasePrice, s.PurchaseManual = resolveField(draftPurchase, savedPurchase, purchaseBase)
	s.SellingPrice, s.SellingManual = resolveField(draftSelling, savedSelling, sellingBase)
	s.Quantity, s.QuantityManual = resolveField(draftQuantity, savedQuantity, decimal.Zero)

	return s, nil
}

// resolveField applies the three-tier precedence to a single field
func resolveField(draftVal, savedVal *decimal.Decimal, baseline decimal.Decimal) (decimal.Decimal, bool) {
	if draftVal != nil {
		return *draftVal, draftVal.Sub(baseline).Abs().GreaterThan(manualTolerance)
	}
	if savedVal != nil && savedVal.Sub(baseline).Abs().GreaterThan(manualTolerance) {
		return *savedVal, true
	}
	return baseline, false
}

// sellingBaseline computes the freshly derived AUTO selling price for the
// product, shifted by the category-wide slider row when one is present.
func sellingBaseline(product *catalog.Product, categoryDraft *DraftChange) (decimal.Decimal, pricing.PriceChangeSource, error) {
	if categoryDraft != nil {
		switch categoryDraft.PriceChangeSource {
		case pricing.PriceSourceMargin, pricing.PriceSourceDiscount:
			price, err := pricing.ComputeSellingPrice(
				product.PriceInput(),
				categoryDraft.PriceChangeSource,
				categoryDraft.MarginPercent,
				categoryDraft.DiscountPercent,
				nil,
			)
			if err != nil {
				return decimal.Zero, "", err
			}
			return price, categoryDraft.PriceChangeSource, nil
		}
	}

	// AUTO: the catalog's stored selling price, falling back to retail when
	// the catalog never set one.
	if !product.SellingPrice.IsZero() {
		return product.SellingPrice.Round(2), pricing.PriceSourceAuto, nil
	}
	price, err := pricing.ComputeSellingPrice(product.PriceInput(), pricing.PriceSourceAuto, nil, nil, nil)
	if err != nil {
		return decimal.Zero, "", err
	}
	return price, pricing.PriceSourceAuto, nil
}
