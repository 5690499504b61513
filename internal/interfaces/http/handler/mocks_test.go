package handler

import (
	"context"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, category catalog.Category, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, category, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByManufacturer(ctx context.Context, category catalog.Category, manufacturer string, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, category, manufacturer, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByGroup(ctx context.Context, key catalog.GroupKey) ([]catalog.Product, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ListManufacturers(ctx context.Context, category catalog.Category) ([]string, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByGroup(ctx context.Context, key catalog.GroupKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByManufacturer(ctx context.Context, category catalog.Category, manufacturer string) error {
	args := m.Called(ctx, category, manufacturer)
	return args.Error(0)
}

func (m *MockProductRepository) RenameManufacturer(ctx context.Context, category catalog.Category, oldName, newName string) (int64, error) {
	args := m.Called(ctx, category, oldName, newName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, category catalog.Category) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

// MockProjectRepository is a mock implementation of project.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockDraftChangeRepository is a mock implementation of project.DraftChangeRepository
type MockDraftChangeRepository struct {
	mock.Mock
}

func (m *MockDraftChangeRepository) FindByKey(ctx context.Context, key project.DraftKey) (*project.DraftChange, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.DraftChange), args.Error(1)
}

func (m *MockDraftChangeRepository) ListByProject(ctx context.Context, projectID uuid.UUID, category *catalog.Category) ([]project.DraftChange, error) {
	args := m.Called(ctx, projectID, category)
	return args.Get(0).([]project.DraftChange), args.Error(1)
}

func (m *MockDraftChangeRepository) Save(ctx context.Context, draft *project.DraftChange) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockDraftChangeRepository) Clear(ctx context.Context, projectID uuid.UUID, category *catalog.Category) error {
	args := m.Called(ctx, projectID, category)
	return args.Error(0)
}
