package pricing

import (
	"time"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/pricing"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpsertDraftRequest carries one draft edit event. Nil fields are left
// untouched on the stored row.
type UpsertDraftRequest struct {
	ProjectID    uuid.UUID
	ProductID    *uuid.UUID
	Category     catalog.Category
	Manufacturer string
	GroupName    string

	RetailPrice     *decimal.Decimal
	PurchasePrice   *decimal.Decimal
	SellingPrice    *decimal.Decimal
	Quantity        *decimal.Decimal
	MarginPercent   *decimal.Decimal
	DiscountPercent *decimal.Decimal
	Source          *pricing.PriceChangeSource
	GroupOption     *project.GroupOption
}

// DraftChangeResponse is one stored draft row
type DraftChangeResponse struct {
	ID           uuid.UUID             `json:"id"`
	ProjectID    uuid.UUID             `json:"project_id"`
	ProductID    *uuid.UUID            `json:"product_id,omitempty"`
	Category     catalog.Category      `json:"category"`
	Manufacturer string                `json:"manufacturer,omitempty"`
	GroupName    string                `json:"group_name,omitempty"`
	RetailPrice  *decimal.Decimal      `json:"retail_price,omitempty"`
	PurchasePrice *decimal.Decimal     `json:"purchase_price,omitempty"`
	SellingPrice *decimal.Decimal      `json:"selling_price,omitempty"`
	Quantity     *decimal.Decimal      `json:"quantity,omitempty"`
	MarginPercent   *decimal.Decimal   `json:"margin_percent,omitempty"`
	DiscountPercent *decimal.Decimal   `json:"discount_percent,omitempty"`
	Source       pricing.PriceChangeSource `json:"source"`
	GroupOption  *project.GroupOption  `json:"group_option,omitempty"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ProductPricingView is the resolved three-tier pricing of one product,
// ready for display.
type ProductPricingView struct {
	ProductID    uuid.UUID        `json:"product_id"`
	Name         string           `json:"name"`
	Category     catalog.Category `json:"category"`
	Manufacturer string           `json:"manufacturer"`
	GroupName    string           `json:"group_name"`
	Unit         string           `json:"unit"`

	RetailPrice   decimal.Decimal `json:"retail_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Quantity      decimal.Decimal `json:"quantity"`

	IsManualPrice    bool                      `json:"is_manual_price"`
	IsManualQuantity bool                      `json:"is_manual_quantity"`
	ChangeSource     pricing.PriceChangeSource `json:"change_source"`

	// EffectiveDiscount is the combined catalog discount of the product's
	// price-list entry; the display string uses the no-discount marker when
	// the entry carries no discount at all.
	EffectiveDiscount        decimal.Decimal `json:"effective_discount"`
	EffectiveDiscountDisplay string          `json:"effective_discount_display"`

	GroupOption project.GroupOption `json:"group_option"`
	Active      bool                `json:"active"`
}

// GroupOptionView is the resolved inclusion state of one product group
type GroupOptionView struct {
	Category     catalog.Category    `json:"category"`
	Manufacturer string              `json:"manufacturer"`
	GroupName    string              `json:"group_name"`
	Option       project.GroupOption `json:"option"`
	Draft        bool                `json:"draft"`
}

func toDraftChangeResponse(d *project.DraftChange) DraftChangeResponse {
	return DraftChangeResponse{
		ID:              d.ID,
		ProjectID:       d.ProjectID,
		ProductID:       d.ProductID,
		Category:        d.Category,
		Manufacturer:    d.Manufacturer,
		GroupName:       d.GroupName,
		RetailPrice:     d.RetailPrice,
		PurchasePrice:   d.PurchasePrice,
		SellingPrice:    d.SellingPrice,
		Quantity:        d.Quantity,
		MarginPercent:   d.MarginPercent,
		DiscountPercent: d.DiscountPercent,
		Source:          d.PriceChangeSource,
		GroupOption:     d.GroupOption,
		UpdatedAt:       d.UpdatedAt,
	}
}
