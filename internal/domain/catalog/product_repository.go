package catalog

import (
	"context"

	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalog persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindByCategory finds all products in a category
	FindByCategory(ctx context.Context, category Category, filter shared.Filter) ([]Product, error)

	// FindByManufacturer finds all products of a manufacturer within a category
	FindByManufacturer(ctx context.Context, category Category, manufacturer string, filter shared.Filter) ([]Product, error)

	// FindByGroup finds all products of one (category, manufacturer, groupName) tuple
	FindByGroup(ctx context.Context, key GroupKey) ([]Product, error)

	// ListManufacturers lists the distinct manufacturers within a category
	ListManufacturers(ctx context.Context, category Category) ([]string, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// SaveBatch creates or updates multiple products atomically
	SaveBatch(ctx context.Context, products []*Product) error

	// Delete deletes a product by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByGroup deletes every product of a group atomically
	DeleteByGroup(ctx context.Context, key GroupKey) error

	// DeleteByManufacturer deletes every product of a manufacturer within a category atomically
	DeleteByManufacturer(ctx context.Context, category Category, manufacturer string) error

	// RenameManufacturer renames a manufacturer across all its products atomically
	RenameManufacturer(ctx context.Context, category Category, oldName, newName string) (int64, error)

	// CountByCategory counts products in a category
	CountByCategory(ctx context.Context, category Category) (int64, error)
}
