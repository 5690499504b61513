package pricing

import (
	"context"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GroupOptionService manages draft inclusion state of product groups.
// Setting an option writes a draft row; it only becomes the committed
// option when the project is saved.
type GroupOptionService struct {
	productRepo  catalog.ProductRepository
	draftRepo    project.DraftChangeRepository
	groupRepo    project.ProjectProductGroupRepository
	draftService *DraftService
	logger       *zap.Logger
}

func NewGroupOptionService(
	productRepo catalog.ProductRepository,
	draftRepo project.DraftChangeRepository,
	groupRepo project.ProjectProductGroupRepository,
	draftService *DraftService,
	logger *zap.Logger,
) *GroupOptionService {
	return &GroupOptionService{
		productRepo:  productRepo,
		draftRepo:    draftRepo,
		groupRepo:    groupRepo,
		draftService: draftService,
		logger:       logger,
	}
}

// SetOption records a draft group option for one product group. The group
// must exist in the catalog, meaning at least one product carries its key.
func (s *GroupOptionService) SetOption(ctx context.Context, projectID uuid.UUID, key catalog.GroupKey, option project.GroupOption) error {
	if !option.IsValid() {
		return shared.NewDomainError("UNKNOWN_GROUP_OPTION", "Unknown group option: "+option.String())
	}
	products, err := s.productRepo.FindByGroup(ctx, key)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return shared.NewDomainError("GROUP_NOT_FOUND", "No products in group "+key.Manufacturer+"/"+key.GroupName)
	}

	if _, err := s.draftService.Upsert(ctx, UpsertDraftRequest{
		ProjectID:    projectID,
		Category:     key.Category,
		Manufacturer: key.Manufacturer,
		GroupName:    key.GroupName,
		GroupOption:  &option,
	}); err != nil {
		return err
	}

	s.logger.Info("group option drafted",
		zap.String("project_id", projectID.String()),
		zap.String("manufacturer", key.Manufacturer),
		zap.String("group", key.GroupName),
		zap.String("option", option.String()))
	return nil
}

// ListByManufacturer resolves the effective option of every group a
// manufacturer has in one category, with draft rows taking precedence over
// committed ones. Groups without any recorded option resolve to NONE.
func (s *GroupOptionService) ListByManufacturer(ctx context.Context, projectID uuid.UUID, category catalog.Category, manufacturer string) ([]GroupOptionView, error) {
	products, err := s.productRepo.FindByManufacturer(ctx, category, manufacturer, shared.Filter{})
	if err != nil {
		return nil, err
	}
	drafts, err := s.draftRepo.ListByProject(ctx, projectID, &category)
	if err != nil {
		return nil, err
	}
	committed, err := s.groupRepo.ListByManufacturer(ctx, projectID, category, manufacturer)
	if err != nil {
		return nil, err
	}

	draftByGroup := make(map[catalog.GroupKey]project.GroupOption)
	for i := range drafts {
		d := &drafts[i]
		if d.IsGroupLevel() && d.GroupOption != nil {
			draftByGroup[catalog.GroupKey{Category: d.Category, Manufacturer: d.Manufacturer, GroupName: d.GroupName}] = *d.GroupOption
		}
	}
	committedByGroup := make(map[catalog.GroupKey]project.GroupOption, len(committed))
	for i := range committed {
		committedByGroup[committed[i].GroupKey()] = committed[i].Option
	}

	seen := make(map[catalog.GroupKey]bool)
	views := make([]GroupOptionView, 0)
	for i := range products {
		key := products[i].GroupKey()
		if seen[key] {
			continue
		}
		seen[key] = true

		view := GroupOptionView{
			Category:     key.Category,
			Manufacturer: key.Manufacturer,
			GroupName:    key.GroupName,
			Option:       project.GroupOptionNone,
		}
		if opt, ok := committedByGroup[key]; ok {
			view.Option = opt
		}
		if opt, ok := draftByGroup[key]; ok {
			view.Option = opt
			view.Draft = true
		}
		views = append(views, view)
	}
	return views, nil
}
