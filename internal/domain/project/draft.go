package project

import (
	"context"
	"time"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/pricing"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftChange holds one row of uncommitted pricing edits for a project.
//
// Three shapes share the table, distinguished by the key fields:
//   - per-product row:    ProductID set, group fields empty
//   - category-wide row:  ProductID nil, group fields empty (margin/discount slider)
//   - per-group row:      ProductID nil, Manufacturer+GroupName set (group option)
//
// At most one row exists per composite key; upserts merge-patch the row.
type DraftChange struct {
	shared.BaseEntity
	// Two partial unique indexes enforce the one-row-per-key rule. A single
	// index over all five columns would not work: product_id is NULL on
	// category-wide and group rows, and NULLs never collide in a unique index.
	ProjectID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_draft_product_key,priority:1,where:product_id IS NOT NULL;uniqueIndex:idx_draft_scope_key,priority:1,where:product_id IS NULL"`
	ProductID    *uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_draft_product_key,priority:2"`
	Category     catalog.Category `gorm:"type:varchar(20);not null;uniqueIndex:idx_draft_product_key,priority:3;uniqueIndex:idx_draft_scope_key,priority:2"`
	Manufacturer string           `gorm:"type:varchar(100);not null;default:'';uniqueIndex:idx_draft_product_key,priority:4;uniqueIndex:idx_draft_scope_key,priority:3"`
	GroupName    string           `gorm:"type:varchar(100);not null;default:'';uniqueIndex:idx_draft_product_key,priority:5;uniqueIndex:idx_draft_scope_key,priority:4"`

	RetailPrice     *decimal.Decimal `gorm:"type:decimal(18,4)"`
	PurchasePrice   *decimal.Decimal `gorm:"type:decimal(18,4)"`
	SellingPrice    *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Quantity        *decimal.Decimal `gorm:"type:decimal(18,4)"`
	MarginPercent   *decimal.Decimal `gorm:"type:decimal(9,4)"`
	DiscountPercent *decimal.Decimal `gorm:"type:decimal(9,4)"`

	PriceChangeSource pricing.PriceChangeSource `gorm:"type:varchar(20);not null;default:'AUTO'"`
	GroupOption       *GroupOption              `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (DraftChange) TableName() string {
	return "draft_changes"
}

// DraftKey is the composite identity of one draft row
type DraftKey struct {
	ProjectID    uuid.UUID
	ProductID    *uuid.UUID
	Category     catalog.Category
	Manufacturer string
	GroupName    string
}

// NewDraftChange creates an empty draft row for the given key
func NewDraftChange(key DraftKey) *DraftChange {
	return &DraftChange{
		BaseEntity:        shared.NewBaseEntity(),
		ProjectID:         key.ProjectID,
		ProductID:         key.ProductID,
		Category:          key.Category,
		Manufacturer:      key.Manufacturer,
		GroupName:         key.GroupName,
		PriceChangeSource: pricing.PriceSourceAuto,
	}
}

// Key returns the composite identity of the draft row
func (d *DraftChange) Key() DraftKey {
	return DraftKey{
		ProjectID:    d.ProjectID,
		ProductID:    d.ProductID,
		Category:     d.Category,
		Manufacturer: d.Manufacturer,
		GroupName:    d.GroupName,
	}
}

// IsCategoryLevel reports whether the row carries category-wide margin/discount values
func (d *DraftChange) IsCategoryLevel() bool {
	return d.ProductID == nil && d.Manufacturer == ""
}

// IsGroupLevel reports whether the row carries a draft group option
func (d *DraftChange) IsGroupLevel() bool {
	return d.ProductID == nil && d.Manufacturer != ""
}

// DraftPatch carries the fields of one edit event. Nil fields are left
// untouched on the stored row - this is a merge-patch, not a replace.
type DraftPatch struct {
	RetailPrice     *decimal.Decimal
	PurchasePrice   *decimal.Decimal
	SellingPrice    *decimal.Decimal
	Quantity        *decimal.Decimal
	MarginPercent   *decimal.Decimal
	DiscountPercent *decimal.Decimal
	Source          *pricing.PriceChangeSource
	GroupOption     *GroupOption
}

// IsEmpty reports whether the patch carries no fields at all
func (p DraftPatch) IsEmpty() bool {
	return p.RetailPrice == nil && p.PurchasePrice == nil && p.SellingPrice == nil &&
		p.Quantity == nil && p.MarginPercent == nil && p.DiscountPercent == nil &&
		p.Source == nil && p.GroupOption == nil
}

// Apply merges the patch into the draft row. Only fields present in the patch
// overwrite; absent fields keep their stored values, so applying the same
// patch twice yields the same row as applying it once.
func (d *DraftChange) Apply(patch DraftPatch) error {
	if patch.Source != nil && !patch.Source.IsValid() {
		return shared.NewDomainError("UNKNOWN_PRICE_SOURCE", "Unknown price change source: "+patch.Source.String())
	}
	if patch.GroupOption != nil && !patch.GroupOption.IsValid() {
		return shared.NewDomainError("UNKNOWN_GROUP_OPTION", "Unknown group option: "+patch.GroupOption.String())
	}
	if patch.RetailPrice != nil {
		d.RetailPrice = patch.RetailPrice
	}
	if patch.PurchasePrice != nil {
		d.PurchasePrice = patch.PurchasePrice
	}
	if patch.SellingPrice != nil {
		d.SellingPrice = patch.SellingPrice
	}
	if patch.Quantity != nil {
		d.Quantity = patch.Quantity
	}
	if patch.MarginPercent != nil {
		d.MarginPercent = patch.MarginPercent
	}
	if patch.DiscountPercent != nil {
		d.DiscountPercent = patch.DiscountPercent
	}
	if patch.Source != nil {
		d.PriceChangeSource = *patch.Source
	}
	if patch.GroupOption != nil {
		d.GroupOption = patch.GroupOption
	}
	d.UpdatedAt = time.Now()
	return nil
}

// DraftChangeRepository defines the holding area for uncommitted edits
type DraftChangeRepository interface {
	// FindByKey finds the draft row with the exact composite key
	FindByKey(ctx context.Context, key DraftKey) (*DraftChange, error)

	// ListByProject lists all draft rows for a project, optionally narrowed
	// to one category
	ListByProject(ctx context.Context, projectID uuid.UUID, category *catalog.Category) ([]DraftChange, error)

	// Save creates or updates a draft row
	Save(ctx context.Context, draft *DraftChange) error

	// Clear deletes all draft rows for a project; with a category it deletes
	// only that category's rows (product, category-wide and group rows alike)
	Clear(ctx context.Context, projectID uuid.UUID, category *catalog.Category) error
}
