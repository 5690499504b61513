package persistence

import (
	"context"
	"errors"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDraftChangeRepository implements project.DraftChangeRepository using GORM
type GormDraftChangeRepository struct {
	db *gorm.DB
}

// NewGormDraftChangeRepository creates a new GormDraftChangeRepository
func NewGormDraftChangeRepository(db *gorm.DB) *GormDraftChangeRepository {
	return &GormDraftChangeRepository{db: db}
}

// FindByKey finds the draft row with the exact composite key.
// Category-wide and group rows carry a NULL product_id, so the product
// predicate has two shapes.
func (r *GormDraftChangeRepository) FindByKey(ctx context.Context, key project.DraftKey) (*project.DraftChange, error) {
	query := r.db.WithContext(ctx).
		Where("project_id = ? AND category = ? AND manufacturer = ? AND group_name = ?",
			key.ProjectID, key.Category, key.Manufacturer, key.GroupName)

	if key.ProductID != nil {
		query = query.Where("product_id = ?", *key.ProductID)
	} else {
		query = query.Where("product_id IS NULL")
	}

	var draft project.DraftChange
	if err := query.First(&draft).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &draft, nil
}

// ListByProject lists all draft rows for a project, optionally narrowed to one category
func (r *GormDraftChangeRepository) ListByProject(ctx context.Context, projectID uuid.UUID, category *catalog.Category) ([]project.DraftChange, error) {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	var drafts []project.DraftChange
	if err := query.Order("created_at ASC").Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

// Save creates or updates a draft row
func (r *GormDraftChangeRepository) Save(ctx context.Context, draft *project.DraftChange) error {
	return r.db.WithContext(ctx).Save(draft).Error
}

// Clear deletes all draft rows for a project, or only one category's rows
func (r *GormDraftChangeRepository) Clear(ctx context.Context, projectID uuid.UUID, category *catalog.Category) error {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	return query.Delete(&project.DraftChange{}).Error
}

// Ensure GormDraftChangeRepository implements DraftChangeRepository
var _ project.DraftChangeRepository = (*GormDraftChangeRepository)(nil)
