package persistence

import (
	"context"
	"errors"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectProductGroupRepository implements project.ProjectProductGroupRepository using GORM
type GormProjectProductGroupRepository struct {
	db *gorm.DB
}

// NewGormProjectProductGroupRepository creates a new GormProjectProductGroupRepository
func NewGormProjectProductGroupRepository(db *gorm.DB) *GormProjectProductGroupRepository {
	return &GormProjectProductGroupRepository{db: db}
}

// FindByKey finds the committed option for one (project, group) pair
func (r *GormProjectProductGroupRepository) FindByKey(ctx context.Context, projectID uuid.UUID, key catalog.GroupKey) (*project.ProjectProductGroup, error) {
	var group project.ProjectProductGroup
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND category = ? AND manufacturer = ? AND group_name = ?",
			projectID, key.Category, key.Manufacturer, key.GroupName).
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// ListByProject lists all committed group options for a project
func (r *GormProjectProductGroupRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]project.ProjectProductGroup, error) {
	var groups []project.ProjectProductGroup
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// ListByManufacturer lists committed options for one manufacturer within a category
func (r *GormProjectProductGroupRepository) ListByManufacturer(ctx context.Context, projectID uuid.UUID, category catalog.Category, manufacturer string) ([]project.ProjectProductGroup, error) {
	var groups []project.ProjectProductGroup
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND category = ? AND manufacturer = ?", projectID, category, manufacturer).
		Order("group_name ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Save creates or updates a committed group option, upserting on the (project, group) key
func (r *GormProjectProductGroupRepository) Save(ctx context.Context, group *project.ProjectProductGroup) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "category"}, {Name: "manufacturer"}, {Name: "group_name"}},
			UpdateAll: true,
		}).
		Create(group).Error
}

// SaveBatch upserts multiple group options
func (r *GormProjectProductGroupRepository) SaveBatch(ctx context.Context, groups []*project.ProjectProductGroup) error {
	if len(groups) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "category"}, {Name: "manufacturer"}, {Name: "group_name"}},
			UpdateAll: true,
		}).
		Create(groups).Error
}

// DeleteByProject deletes all committed group options for a project
func (r *GormProjectProductGroupRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&project.ProjectProductGroup{}, "project_id = ?", projectID).
		Error
}

// Ensure GormProjectProductGroupRepository implements ProjectProductGroupRepository
var _ project.ProjectProductGroupRepository = (*GormProjectProductGroupRepository)(nil)
