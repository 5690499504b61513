package persistence

import (
	"context"
	"errors"

	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectProductRepository implements project.ProjectProductRepository using GORM
type GormProjectProductRepository struct {
	db *gorm.DB
}

// NewGormProjectProductRepository creates a new GormProjectProductRepository
func NewGormProjectProductRepository(db *gorm.DB) *GormProjectProductRepository {
	return &GormProjectProductRepository{db: db}
}

// FindByKey finds the committed row for one (project, product) pair
func (r *GormProjectProductRepository) FindByKey(ctx context.Context, projectID, productID uuid.UUID) (*project.ProjectProduct, error) {
	var pp project.ProjectProduct
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND product_id = ?", projectID, productID).
		First(&pp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pp, nil
}

// ListByProject lists all committed rows for a project
func (r *GormProjectProductRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.ProjectProduct, error) {
	var pps []project.ProjectProduct
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&pps).Error; err != nil {
		return nil, err
	}
	return pps, nil
}

// Save creates or updates a committed row, upserting on the (project, product) key
func (r *GormProjectProductRepository) Save(ctx context.Context, pp *project.ProjectProduct) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "product_id"}},
			UpdateAll: true,
		}).
		Create(pp).Error
}

// SaveBatch upserts multiple committed rows
func (r *GormProjectProductRepository) SaveBatch(ctx context.Context, pps []*project.ProjectProduct) error {
	if len(pps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "product_id"}},
			UpdateAll: true,
		}).
		Create(pps).Error
}

// DeleteByProject deletes all committed rows for a project
func (r *GormProjectProductRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&project.ProjectProduct{}, "project_id = ?", projectID).
		Error
}

// Ensure GormProjectProductRepository implements ProjectProductRepository
var _ project.ProjectProductRepository = (*GormProjectProductRepository)(nil)
