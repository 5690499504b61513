package pricing

import (
	"context"
	"testing"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGroupOptionService(
	productRepo *MockProductRepository,
	draftRepo *MockDraftChangeRepository,
	groupRepo *MockProjectProductGroupRepository,
	projectRepo *MockProjectRepository,
) *GroupOptionService {
	draftService := NewDraftService(draftRepo, productRepo, projectRepo, zap.NewNop())
	return NewGroupOptionService(productRepo, draftRepo, groupRepo, draftService, zap.NewNop())
}

func TestGroupOptionService_SetOption_WritesDraftRow(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockDraftRepo := new(MockDraftChangeRepository)
	mockGroupRepo := new(MockProjectProductGroupRepository)
	mockProjectRepo := new(MockProjectRepository)
	service := newGroupOptionService(mockProductRepo, mockDraftRepo, mockGroupRepo, mockProjectRepo)

	ctx := context.Background()
	projectID := newTestProjectID()
	p := createTestProduct("Dachówka podstawowa", "Braas", "Rubin 11V")
	key := p.GroupKey()

	mockProductRepo.On("FindByGroup", ctx, key).Return([]catalog.Product{*p}, nil)
	mockProjectRepo.On("FindByID", ctx, projectID).Return(createTestProject(), nil)
	mockDraftRepo.On("FindByKey", ctx, mock.AnythingOfType("project.DraftKey")).Return(nil, shared.ErrNotFound)
	mockDraftRepo.On("Save", ctx, mock.MatchedBy(func(d *project.DraftChange) bool {
		return d.IsGroupLevel() && d.GroupOption != nil && *d.GroupOption == project.GroupOptionMain
	})).Return(nil)

	err := service.SetOption(ctx, projectID, key, project.GroupOptionMain)

	assert.NoError(t, err)
	mockDraftRepo.AssertExpectations(t)
}

func TestGroupOptionService_SetOption_UnknownGroup(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockDraftRepo := new(MockDraftChangeRepository)
	mockGroupRepo := new(MockProjectProductGroupRepository)
	mockProjectRepo := new(MockProjectRepository)
	service := newGroupOptionService(mockProductRepo, mockDraftRepo, mockGroupRepo, mockProjectRepo)

	ctx := context.Background()
	key := catalog.GroupKey{Category: catalog.CategoryTile, Manufacturer: "Braas", GroupName: "nie ma"}

	mockProductRepo.On("FindByGroup", ctx, key).Return([]catalog.Product{}, nil)

	err := service.SetOption(ctx, newTestProjectID(), key, project.GroupOptionOptional)

	assert.Error(t, err)
	assert.True(t, shared.IsDomainError(err, "GROUP_NOT_FOUND"))
	mockDraftRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGroupOptionService_SetOption_InvalidOption(t *testing.T) {
	service := newGroupOptionService(new(MockProductRepository), new(MockDraftChangeRepository), new(MockProjectProductGroupRepository), new(MockProjectRepository))

	err := service.SetOption(context.Background(), newTestProjectID(),
		catalog.GroupKey{Category: catalog.CategoryTile, Manufacturer: "Braas", GroupName: "Rubin 11V"},
		project.GroupOption("MAYBE"))

	assert.Error(t, err)
	assert.True(t, shared.IsDomainError(err, "UNKNOWN_GROUP_OPTION"))
}

func TestGroupOptionService_ListByManufacturer_DraftWins(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockDraftRepo := new(MockDraftChangeRepository)
	mockGroupRepo := new(MockProjectProductGroupRepository)
	mockProjectRepo := new(MockProjectRepository)
	service := newGroupOptionService(mockProductRepo, mockDraftRepo, mockGroupRepo, mockProjectRepo)

	ctx := context.Background()
	projectID := newTestProjectID()
	category := catalog.CategoryTile

	rubin := createTestProduct("Dachówka podstawowa", "Braas", "Rubin 11V")
	rubinAkc := createTestProduct("Gąsior", "Braas", "Rubin 11V")
	celtycka := createTestProduct("Dachówka podstawowa", "Braas", "Celtycka")

	committed, err := project.NewProjectProductGroup(projectID, rubin.GroupKey(), project.GroupOptionMain)
	require.NoError(t, err)

	none := project.GroupOptionNone
	draft := project.NewDraftChange(project.DraftKey{
		ProjectID:    projectID,
		Category:     category,
		Manufacturer: "Braas",
		GroupName:    "Rubin 11V",
	})
	draft.GroupOption = &none

	mockProductRepo.On("FindByManufacturer", ctx, category, "Braas", shared.Filter{}).
		Return([]catalog.Product{*rubin, *rubinAkc, *celtycka}, nil)
	mockDraftRepo.On("ListByProject", ctx, projectID, &category).Return([]project.DraftChange{*draft}, nil)
	mockGroupRepo.On("ListByManufacturer", ctx, projectID, category, "Braas").
		Return([]project.ProjectProductGroup{*committed}, nil)

	views, err := service.ListByManufacturer(ctx, projectID, category, "Braas")

	require.NoError(t, err)
	// two products share the Rubin 11V group, so two distinct groups remain
	require.Len(t, views, 2)

	byName := make(map[string]GroupOptionView, len(views))
	for _, v := range views {
		byName[v.GroupName] = v
	}
	assert.Equal(t, project.GroupOptionNone, byName["Rubin 11V"].Option)
	assert.True(t, byName["Rubin 11V"].Draft)
	assert.Equal(t, project.GroupOptionNone, byName["Celtycka"].Option)
	assert.False(t, byName["Celtycka"].Draft)
}
