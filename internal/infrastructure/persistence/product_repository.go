package persistence

import (
	"context"
	"errors"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs finds multiple products by their IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}

	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory finds all products in a category
func (r *GormProductRepository) FindByCategory(ctx context.Context, category catalog.Category, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Product{}).
			Where("category = ?", category),
		filter,
	)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByManufacturer finds all products of a manufacturer within a category
func (r *GormProductRepository) FindByManufacturer(ctx context.Context, category catalog.Category, manufacturer string, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Product{}).
			Where("category = ? AND manufacturer = ?", category, manufacturer),
		filter,
	)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByGroup finds all products of one (category, manufacturer, groupName) tuple
func (r *GormProductRepository) FindByGroup(ctx context.Context, key catalog.GroupKey) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("category = ? AND manufacturer = ? AND group_name = ?", key.Category, key.Manufacturer, key.GroupName).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListManufacturers lists the distinct manufacturers within a category
func (r *GormProductRepository) ListManufacturers(ctx context.Context, category catalog.Category) ([]string, error) {
	var manufacturers []string
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("category = ?", category).
		Distinct().
		Order("manufacturer ASC").
		Pluck("manufacturer", &manufacturers).Error; err != nil {
		return nil, err
	}
	return manufacturers, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// SaveBatch creates or updates multiple products
func (r *GormProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(products).Error
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByGroup deletes every product of a group
func (r *GormProductRepository) DeleteByGroup(ctx context.Context, key catalog.GroupKey) error {
	return r.db.WithContext(ctx).
		Delete(&catalog.Product{}, "category = ? AND manufacturer = ? AND group_name = ?", key.Category, key.Manufacturer, key.GroupName).
		Error
}

// DeleteByManufacturer deletes every product of a manufacturer within a category
func (r *GormProductRepository) DeleteByManufacturer(ctx context.Context, category catalog.Category, manufacturer string) error {
	return r.db.WithContext(ctx).
		Delete(&catalog.Product{}, "category = ? AND manufacturer = ?", category, manufacturer).
		Error
}

// RenameManufacturer renames a manufacturer across all its products
func (r *GormProductRepository) RenameManufacturer(ctx context.Context, category catalog.Category, oldName, newName string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("category = ? AND manufacturer = ?", category, oldName).
		Update("manufacturer", newName)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountByCategory counts products in a category
func (r *GormProductRepository) CountByCategory(ctx context.Context, category catalog.Category) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("category = ?", category).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR group_name LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "manufacturer":
			query = query.Where("manufacturer = ?", value)
		case "group_name":
			query = query.Where("group_name = ?", value)
		case "unit":
			query = query.Where("unit = ?", value)
		case "mapper_name":
			query = query.Where("mapper_name = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, ProductSortFields, "name")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("manufacturer ASC, group_name ASC, name ASC")
	}

	return query
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
