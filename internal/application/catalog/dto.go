package catalog

import (
	"time"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to add a price-list entry
type CreateProductRequest struct {
	Name               string           `json:"name" binding:"required,min=1,max=200"`
	Category           string           `json:"category" binding:"required"`
	Manufacturer       string           `json:"manufacturer" binding:"required,min=1,max=100"`
	GroupName          string           `json:"group_name" binding:"required,min=1,max=100"`
	Unit               string           `json:"unit" binding:"required,min=1,max=20"`
	MapperName         string           `json:"mapper_name" binding:"max=100"`
	QuantityConverter  *decimal.Decimal `json:"quantity_converter"`
	RetailPrice        *decimal.Decimal `json:"retail_price"`
	PurchasePrice      *decimal.Decimal `json:"purchase_price"`
	SellingPrice       *decimal.Decimal `json:"selling_price"`
	BasicDiscount      *int             `json:"basic_discount"`
	PromotionDiscount  *int             `json:"promotion_discount"`
	AdditionalDiscount *int             `json:"additional_discount"`
	SkontoDiscount     *int             `json:"skonto_discount"`
	DiscountMethod     *string          `json:"discount_method"`
	MarginPercent      *decimal.Decimal `json:"margin_percent"`
}

// UpdateProductRequest represents a partial update of a price-list entry
type UpdateProductRequest struct {
	Name               *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Manufacturer       *string          `json:"manufacturer" binding:"omitempty,min=1,max=100"`
	GroupName          *string          `json:"group_name" binding:"omitempty,min=1,max=100"`
	MapperName         *string          `json:"mapper_name" binding:"omitempty,max=100"`
	QuantityConverter  *decimal.Decimal `json:"quantity_converter"`
	RetailPrice        *decimal.Decimal `json:"retail_price"`
	PurchasePrice      *decimal.Decimal `json:"purchase_price"`
	SellingPrice       *decimal.Decimal `json:"selling_price"`
	BasicDiscount      *int             `json:"basic_discount"`
	PromotionDiscount  *int             `json:"promotion_discount"`
	AdditionalDiscount *int             `json:"additional_discount"`
	SkontoDiscount     *int             `json:"skonto_discount"`
	DiscountMethod     *string          `json:"discount_method"`
	MarginPercent      *decimal.Decimal `json:"margin_percent"`
}

// RenameManufacturerRequest renames a manufacturer across a whole category
type RenameManufacturerRequest struct {
	OldName string `json:"old_name" binding:"required,min=1,max=100"`
	NewName string `json:"new_name" binding:"required,min=1,max=100"`
}

// ProductResponse represents a price-list entry in API responses
type ProductResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Manufacturer       string          `json:"manufacturer"`
	GroupName          string          `json:"group_name"`
	Unit               string          `json:"unit"`
	MapperName         string          `json:"mapper_name,omitempty"`
	QuantityConverter  decimal.Decimal `json:"quantity_converter"`
	RetailPrice        decimal.Decimal `json:"retail_price"`
	PurchasePrice      decimal.Decimal `json:"purchase_price"`
	SellingPrice       decimal.Decimal `json:"selling_price"`
	BasicDiscount      int             `json:"basic_discount"`
	PromotionDiscount  int             `json:"promotion_discount"`
	AdditionalDiscount int             `json:"additional_discount"`
	SkontoDiscount     int             `json:"skonto_discount"`
	DiscountMethod     string          `json:"discount_method"`
	MarginPercent      decimal.Decimal `json:"margin_percent"`
	EffectiveDiscount  string          `json:"effective_discount"`
	Version            int             `json:"version"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ProductListResponse is a paginated list of price-list entries
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// toProductResponse converts a product aggregate to its API representation
func toProductResponse(p *catalog.Product) ProductResponse {
	components := p.DiscountComponents()
	display := pricing.NoDiscountMarker
	if !components.IsZero() {
		if effective, _, err := pricing.ResolveEffectiveDiscount(components, p.DiscountMethod); err == nil {
			display = pricing.FormatPercent(effective)
		}
	}

	return ProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Category:           p.Category.String(),
		Manufacturer:       p.Manufacturer,
		GroupName:          p.GroupName,
		Unit:               p.Unit,
		MapperName:         p.MapperName,
		QuantityConverter:  p.QuantityConverter,
		RetailPrice:        p.RetailPrice,
		PurchasePrice:      p.PurchasePrice,
		SellingPrice:       p.SellingPrice,
		BasicDiscount:      p.BasicDiscount,
		PromotionDiscount:  p.PromotionDiscount,
		AdditionalDiscount: p.AdditionalDiscount,
		SkontoDiscount:     p.SkontoDiscount,
		DiscountMethod:     p.DiscountMethod.String(),
		MarginPercent:      p.MarginPercent,
		EffectiveDiscount:  display,
		Version:            p.Version,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
