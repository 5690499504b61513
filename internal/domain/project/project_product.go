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

// GroupOption is the per-group inclusion state in an offer
type GroupOption string

const (
	// GroupOptionMain marks the group as the primary offer
	GroupOptionMain GroupOption = "MAIN"
	// GroupOptionOptional marks the group as an alternative shown separately
	GroupOptionOptional GroupOption = "OPTIONAL"
	// GroupOptionNone excludes the group from offer generation entirely
	GroupOptionNone GroupOption = "NONE"
)

// String returns the string representation of the group option
func (o GroupOption) String() string {
	return string(o)
}

// IsValid reports whether the option is one of the known inclusion states
func (o GroupOption) IsValid() bool {
	switch o {
	case GroupOptionMain, GroupOptionOptional, GroupOptionNone:
		return true
	}
	return false
}

// IncludedInOffer reports whether products of the group appear in generated offers
func (o GroupOption) IncludedInOffer() bool {
	return o == GroupOptionMain || o == GroupOptionOptional
}

// ProjectProduct is the last committed pricing state of one product in a
// project. A save replaces the full set of fields; it is never partially
// written.
type ProjectProduct struct {
	shared.BaseEntity
	ProjectID         uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_project_product,priority:1"`
	ProductID         uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_project_product,priority:2"`
	RetailPrice       decimal.Decimal           `gorm:"type:decimal(18,4);not null;default:0"`
	PurchasePrice     decimal.Decimal           `gorm:"type:decimal(18,4);not null;default:0"`
	SellingPrice      decimal.Decimal           `gorm:"type:decimal(18,4);not null;default:0"`
	Quantity          decimal.Decimal           `gorm:"type:decimal(18,4);not null;default:0"`
	MarginPercent     *decimal.Decimal          `gorm:"type:decimal(9,4)"`
	DiscountPercent   *decimal.Decimal          `gorm:"type:decimal(9,4)"`
	PriceChangeSource pricing.PriceChangeSource `gorm:"type:varchar(20);not null;default:'AUTO'"`
}

// TableName returns the table name for GORM
func (ProjectProduct) TableName() string {
	return "project_products"
}

// NewProjectProduct creates a committed row for one (project, product) pair
func NewProjectProduct(projectID, productID uuid.UUID) *ProjectProduct {
	return &ProjectProduct{
		BaseEntity:        shared.NewBaseEntity(),
		ProjectID:         projectID,
		ProductID:         productID,
		PriceChangeSource: pricing.PriceSourceAuto,
	}
}

// ApplyState replaces the full committed field set from a resolved pricing state
func (pp *ProjectProduct) ApplyState(s State, marginPercent, discountPercent *decimal.Decimal) {
	pp.RetailPrice = s.RetailPrice
	pp.PurchasePrice = s.PurchasePrice
	pp.SellingPrice = s.SellingPrice
	pp.Quantity = s.Quantity
	pp.MarginPercent = marginPercent
	pp.DiscountPercent = discountPercent
	pp.PriceChangeSource = s.ChangeSource
	pp.UpdatedAt = time.Now()
}

// ProjectProductGroup is the committed inclusion state of one product group
// within a project.
type ProjectProductGroup struct {
	shared.BaseEntity
	ProjectID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_project_group,priority:1"`
	Category     catalog.Category `gorm:"type:varchar(20);not null;uniqueIndex:idx_project_group,priority:2"`
	Manufacturer string           `gorm:"type:varchar(100);not null;uniqueIndex:idx_project_group,priority:3"`
	GroupName    string           `gorm:"type:varchar(100);not null;uniqueIndex:idx_project_group,priority:4"`
	Option       GroupOption      `gorm:"type:varchar(20);not null;default:'NONE'"`
}

// TableName returns the table name for GORM
func (ProjectProductGroup) TableName() string {
	return "project_product_groups"
}

// NewProjectProductGroup creates a committed group-option row
func NewProjectProductGroup(projectID uuid.UUID, key catalog.GroupKey, option GroupOption) (*ProjectProductGroup, error) {
	if !option.IsValid() {
		return nil, shared.NewDomainError("UNKNOWN_GROUP_OPTION", "Unknown group option: "+string(option))
	}
	return &ProjectProductGroup{
		BaseEntity:   shared.NewBaseEntity(),
		ProjectID:    projectID,
		Category:     key.Category,
		Manufacturer: key.Manufacturer,
		GroupName:    key.GroupName,
		Option:       option,
	}, nil
}

// GroupKey returns the catalog group this row refers to
func (g *ProjectProductGroup) GroupKey() catalog.GroupKey {
	return catalog.GroupKey{
		Category:     g.Category,
		Manufacturer: g.Manufacturer,
		GroupName:    g.GroupName,
	}
}

// ProjectProductRepository persists committed per-product pricing state
type ProjectProductRepository interface {
	// FindByKey finds the committed row for one (project, product) pair
	FindByKey(ctx context.Context, projectID, productID uuid.UUID) (*ProjectProduct, error)

	// ListByProject lists all committed rows for a project
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]ProjectProduct, error)

	// Save creates or updates a committed row (upsert by key)
	Save(ctx context.Context, pp *ProjectProduct) error

	// SaveBatch upserts multiple committed rows atomically
	SaveBatch(ctx context.Context, pps []*ProjectProduct) error

	// DeleteByProject deletes all committed rows for a project
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

// ProjectProductGroupRepository persists committed group options
type ProjectProductGroupRepository interface {
	// FindByKey finds the committed option for one (project, group) pair
	FindByKey(ctx context.Context, projectID uuid.UUID, key catalog.GroupKey) (*ProjectProductGroup, error)

	// ListByProject lists all committed group options for a project
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]ProjectProductGroup, error)

	// ListByManufacturer lists committed options for one manufacturer within a category
	ListByManufacturer(ctx context.Context, projectID uuid.UUID, category catalog.Category, manufacturer string) ([]ProjectProductGroup, error)

	// Save creates or updates a committed group option (upsert by key)
	Save(ctx context.Context, group *ProjectProductGroup) error

	// SaveBatch upserts multiple group options atomically
	SaveBatch(ctx context.Context, groups []*ProjectProductGroup) error

	// DeleteByProject deletes all committed group options for a project
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
