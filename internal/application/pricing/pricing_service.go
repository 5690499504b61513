package pricing

import (
	"context"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/pricing"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PricingService resolves the effective pricing state of a project's
// products by merging draft edits, saved overrides and catalog baselines.
type PricingService struct {
	productRepo        catalog.ProductRepository
	draftRepo          project.DraftChangeRepository
	projectProductRepo project.ProjectProductRepository
	groupRepo          project.ProjectProductGroupRepository
	draftService       *DraftService
	logger             *zap.Logger
}

func NewPricingService(
	productRepo catalog.ProductRepository,
	draftRepo project.DraftChangeRepository,
	projectProductRepo project.ProjectProductRepository,
	groupRepo project.ProjectProductGroupRepository,
	draftService *DraftService,
	logger *zap.Logger,
) *PricingService {
	return &PricingService{
		productRepo:        productRepo,
		draftRepo:          draftRepo,
		projectProductRepo: projectProductRepo,
		groupRepo:          groupRepo,
		draftService:       draftService,
		logger:             logger,
	}
}

// draftIndex splits a project's draft rows by shape for constant-time lookup
type draftIndex struct {
	perProduct map[uuid.UUID]*project.DraftChange
	perGroup   map[catalog.GroupKey]*project.DraftChange
	category   map[catalog.Category]*project.DraftChange
}

func indexDrafts(drafts []project.DraftChange) draftIndex {
	idx := draftIndex{
		perProduct: make(map[uuid.UUID]*project.DraftChange),
		perGroup:   make(map[catalog.GroupKey]*project.DraftChange),
		category:   make(map[catalog.Category]*project.DraftChange),
	}
	for i := range drafts {
		d := &drafts[i]
		switch {
		case d.ProductID != nil:
			idx.perProduct[*d.ProductID] = d
		case d.IsGroupLevel():
			idx.perGroup[catalog.GroupKey{Category: d.Category, Manufacturer: d.Manufacturer, GroupName: d.GroupName}] = d
		default:
			idx.category[d.Category] = d
		}
	}
	return idx
}

// ResolveCategory computes the display state of every product in one
// category of a project. No rows are written; the result reflects drafts
// as if they were already saved.
func (s *PricingService) ResolveCategory(ctx context.Context, projectID uuid.UUID, category catalog.Category) ([]ProductPricingView, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "unknown product category")
	}

	products, err := s.productRepo.FindByCategory(ctx, category, shared.Filter{})
	if err != nil {
		return nil, err
	}
	drafts, err := s.draftRepo.ListByProject(ctx, projectID, &category)
	if err != nil {
		return nil, err
	}
	saved, err := s.projectProductRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	idx := indexDrafts(drafts)
	savedByProduct := make(map[uuid.UUID]*project.ProjectProduct, len(saved))
	for i := range saved {
		savedByProduct[saved[i].ProductID] = &saved[i]
	}
	savedGroups := make(map[catalog.GroupKey]project.GroupOption, len(groups))
	for i := range groups {
		savedGroups[groups[i].GroupKey()] = groups[i].Option
	}

	views := make([]ProductPricingView, 0, len(products))
	for i := range products {
		p := &products[i]
		view, err := s.buildView(p, savedByProduct[p.ID], idx, savedGroups)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *PricingService) buildView(
	p *catalog.Product,
	saved *project.ProjectProduct,
	idx draftIndex,
	savedGroups map[catalog.GroupKey]project.GroupOption,
) (ProductPricingView, error) {
	state, err := project.ResolveState(p, saved, idx.perProduct[p.ID], idx.category[p.Category])
	if err != nil {
		return ProductPricingView{}, err
	}

	components := p.DiscountComponents()
	effective, clamped, err := pricing.ResolveEffectiveDiscount(components, p.DiscountMethod)
	if err != nil {
		return ProductPricingView{}, err
	}
	if clamped {
		s.logger.Warn("discount cascade exceeded 100 percent, clamped",
			zap.String("product_id", p.ID.String()),
			zap.String("method", p.DiscountMethod.String()))
	}
	display := pricing.NoDiscountMarker
	if !components.IsZero() {
		display = pricing.FormatPercent(effective)
	}

	return ProductPricingView{
		ProductID:                p.ID,
		Name:                     p.Name,
		Category:                 p.Category,
		Manufacturer:             p.Manufacturer,
		GroupName:                p.GroupName,
		Unit:                     p.Unit,
		RetailPrice:              state.RetailPrice,
		PurchasePrice:            state.PurchasePrice,
		SellingPrice:             state.SellingPrice,
		Quantity:                 state.Quantity,
		IsManualPrice:            state.IsManualPrice(),
		IsManualQuantity:         state.IsManualQuantity(),
		ChangeSource:             state.ChangeSource,
		EffectiveDiscount:        effective,
		EffectiveDiscountDisplay: display,
		GroupOption:              resolveGroupOption(p.GroupKey(), idx, savedGroups),
		Active:                   state.IsActive(),
	}, nil
}

// resolveGroupOption applies the same draft-over-saved precedence to group
// inclusion state as ResolveState applies to prices.
func resolveGroupOption(key catalog.GroupKey, idx draftIndex, savedGroups map[catalog.GroupKey]project.GroupOption) project.GroupOption {
	if d, ok := idx.perGroup[key]; ok && d.GroupOption != nil {
		return *d.GroupOption
	}
	if opt, ok := savedGroups[key]; ok {
		return opt
	}
	return project.GroupOptionNone
}

// ApplyMeasurements projects roof measurement form values into per-product
// quantity drafts. Each product whose mapper name matches a form field gets
// a quantity draft of formValue times its converter; products without a
// matching field are left alone. Returns the number of drafts written.
func (s *PricingService) ApplyMeasurements(ctx context.Context, projectID uuid.UUID, category catalog.Category, measurements map[string]decimal.Decimal) (int, error) {
	if !category.IsValid() {
		return 0, shared.NewDomainError("INVALID_CATEGORY", "unknown product category")
	}
	products, err := s.productRepo.FindByCategory(ctx, category, shared.Filter{})
	if err != nil {
		return 0, err
	}

	written := 0
	for i := range products {
		p := &products[i]
		if p.MapperName == "" {
			continue
		}
		formValue, ok := measurements[p.MapperName]
		if !ok {
			continue
		}
		quantity := pricing.ProjectQuantity(formValue, p.QuantityConverter)
		productID := p.ID
		if _, err := s.draftService.Upsert(ctx, UpsertDraftRequest{
			ProjectID: projectID,
			ProductID: &productID,
			Category:  category,
			Quantity:  &quantity,
		}); err != nil {
			return written, err
		}
		written++
	}

	s.logger.Info("measurements projected into quantity drafts",
		zap.String("project_id", projectID.String()),
		zap.String("category", category.String()),
		zap.Int("drafts", written))
	return written, nil
}
