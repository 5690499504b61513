package catalog

import (
	"strings"
	"time"

	"github.com/dachpro/backoffice/internal/domain/pricing"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/dachpro/backoffice/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Category is the top-level product classification
type Category string

const (
	CategoryTile      Category = "TILE"
	CategoryGutter    Category = "GUTTER"
	CategoryAccessory Category = "ACCESSORY"
)

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the category is one of the known classifications
func (c Category) IsValid() bool {
	switch c {
	case CategoryTile, CategoryGutter, CategoryAccessory:
		return true
	}
	return false
}

// Product represents one price-list entry of the catalog.
// It is the aggregate root for catalog operations and is treated as
// immutable during a single pricing computation.
type Product struct {
	shared.BaseAggregateRoot
	Name               string                 `gorm:"type:varchar(200);not null"`
	Category           Category               `gorm:"type:varchar(20);not null;index:idx_product_group,priority:1"`
	Manufacturer       string                 `gorm:"type:varchar(100);not null;index:idx_product_group,priority:2"`
	GroupName          string                 `gorm:"type:varchar(100);not null;index:idx_product_group,priority:3"`
	Unit               string                 `gorm:"type:varchar(20);not null"`
	MapperName         string                 `gorm:"type:varchar(100)"` // form field this product's quantity is projected from
	QuantityConverter  decimal.Decimal        `gorm:"type:decimal(18,6);not null;default:0"`
	RetailPrice        decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	PurchasePrice      decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	SellingPrice       decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	BasicDiscount      int                    `gorm:"not null;default:0"`
	PromotionDiscount  int                    `gorm:"not null;default:0"`
	AdditionalDiscount int                    `gorm:"not null;default:0"`
	SkontoDiscount     int                    `gorm:"not null;default:0"`
	DiscountMethod     pricing.DiscountMethod `gorm:"type:varchar(20);not null;default:'SUMARYCZNY'"`
	MarginPercent      decimal.Decimal        `gorm:"type:decimal(9,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new catalog product
func NewProduct(name string, category Category, manufacturer, groupName, unit string) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown product category: "+string(category))
	}
	if strings.TrimSpace(manufacturer) == "" {
		return nil, shared.NewDomainError("INVALID_MANUFACTURER", "Manufacturer cannot be empty")
	}
	if strings.TrimSpace(groupName) == "" {
		return nil, shared.NewDomainError("INVALID_GROUP", "Group name cannot be empty")
	}
	if strings.TrimSpace(unit) == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Category:          category,
		Manufacturer:      manufacturer,
		GroupName:         groupName,
		Unit:              unit,
		QuantityConverter: decimal.Zero,
		RetailPrice:       decimal.Zero,
		PurchasePrice:     decimal.Zero,
		SellingPrice:      decimal.Zero,
		DiscountMethod:    pricing.DiscountMethodSum,
	}, nil
}

// Rename updates the product's display name
func (p *Product) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	p.Name = name
	p.touch()
	return nil
}

// SetPrices sets the catalog retail, purchase and selling prices
func (p *Product) SetPrices(retail, purchase, selling valueobject.Money) error {
	if retail.IsNegative() || purchase.IsNegative() || selling.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Catalog prices cannot be negative")
	}
	p.RetailPrice = retail.Amount()
	p.PurchasePrice = purchase.Amount()
	p.SellingPrice = selling.Amount()
	p.touch()
	return nil
}

// SetDiscounts sets the four layered discount components and the combination method
func (p *Product) SetDiscounts(basic, promotion, additional, skonto int, method pricing.DiscountMethod) error {
	for _, d := range []int{basic, promotion, additional, skonto} {
		if d < 0 || d > 100 {
			return shared.NewDomainError("INVALID_DISCOUNT", "Discount components must be between 0 and 100")
		}
	}
	if !method.IsValid() {
		return shared.NewDomainError("UNKNOWN_DISCOUNT_METHOD", "Unknown discount calculation method: "+string(method))
	}
	p.BasicDiscount = basic
	p.PromotionDiscount = promotion
	p.AdditionalDiscount = additional
	p.SkontoDiscount = skonto
	p.DiscountMethod = method
	p.touch()
	return nil
}

// SetMargin sets the default margin percent applied in MARGIN pricing
func (p *Product) SetMargin(marginPercent decimal.Decimal) error {
	if marginPercent.IsNegative() {
		return shared.NewDomainError("INVALID_MARGIN", "Margin percent cannot be negative")
	}
	p.MarginPercent = marginPercent
	p.touch()
	return nil
}

// SetQuantityConverter sets the multiplier translating a form measurement into units
func (p *Product) SetQuantityConverter(converter decimal.Decimal) error {
	if converter.IsNegative() {
		return shared.NewDomainError("INVALID_CONVERTER", "Quantity converter cannot be negative")
	}
	p.QuantityConverter = converter
	p.touch()
	return nil
}

// SetMapperName sets the form field name this product's quantity is read from
func (p *Product) SetMapperName(mapperName string) {
	p.MapperName = mapperName
	p.touch()
}

// MoveToGroup reassigns the product to another (manufacturer, groupName) pair
func (p *Product) MoveToGroup(manufacturer, groupName string) error {
	if strings.TrimSpace(manufacturer) == "" {
		return shared.NewDomainError("INVALID_MANUFACTURER", "Manufacturer cannot be empty")
	}
	if strings.TrimSpace(groupName) == "" {
		return shared.NewDomainError("INVALID_GROUP", "Group name cannot be empty")
	}
	p.Manufacturer = manufacturer
	p.GroupName = groupName
	p.touch()
	return nil
}

// DiscountComponents returns the four layered discounts as pricing components
func (p *Product) DiscountComponents() pricing.DiscountComponents {
	return pricing.DiscountComponents{
		Basic:      decimal.NewFromInt(int64(p.BasicDiscount)),
		Additional: decimal.NewFromInt(int64(p.AdditionalDiscount)),
		Promotion:  decimal.NewFromInt(int64(p.PromotionDiscount)),
		Skonto:     decimal.NewFromInt(int64(p.SkontoDiscount)),
	}
}

// PriceInput returns the catalog prices used by the price computer
func (p *Product) PriceInput() pricing.PriceInput {
	return pricing.PriceInput{
		RetailPrice:   p.RetailPrice,
		PurchasePrice: p.PurchasePrice,
	}
}

// GroupKey identifies the product's selectable group within its category
func (p *Product) GroupKey() GroupKey {
	return GroupKey{
		Category:     p.Category,
		Manufacturer: p.Manufacturer,
		GroupName:    p.GroupName,
	}
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// GroupKey identifies one selectable product line within a category
type GroupKey struct {
	Category     Category
	Manufacturer string
	GroupName    string
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
