package pricing

import (
	"context"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DraftService records unsaved pricing edits as merge patches keyed by
// project, product and group.
type DraftService struct {
	draftRepo   project.DraftChangeRepository
	productRepo catalog.ProductRepository
	projectRepo project.ProjectRepository
	logger      *zap.Logger
}

func NewDraftService(
	draftRepo project.DraftChangeRepository,
	productRepo catalog.ProductRepository,
	projectRepo project.ProjectRepository,
	logger *zap.Logger,
) *DraftService {
	return &DraftService{
		draftRepo:   draftRepo,
		productRepo: productRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Upsert merges the request into the draft row identified by its key,
// creating the row when absent.
func (s *DraftService) Upsert(ctx context.Context, req UpsertDraftRequest) (*DraftChangeResponse, error) {
	if !req.Category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "unknown product category")
	}

	patch := project.DraftPatch{
		RetailPrice:     req.RetailPrice,
		PurchasePrice:   req.PurchasePrice,
		SellingPrice:    req.SellingPrice,
		Quantity:        req.Quantity,
		MarginPercent:   req.MarginPercent,
		DiscountPercent: req.DiscountPercent,
		Source:          req.Source,
		GroupOption:     req.GroupOption,
	}
	if patch.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_DRAFT_PATCH", "draft change carries no fields")
	}

	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	if req.ProductID != nil {
		product, err := s.productRepo.FindByID(ctx, *req.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Category != req.Category {
			return nil, shared.ErrCategoryMismatch
		}
	}

	key := project.DraftKey{
		ProjectID:    req.ProjectID,
		ProductID:    req.ProductID,
		Category:     req.Category,
		Manufacturer: req.Manufacturer,
		GroupName:    req.GroupName,
	}

	draft, err := s.draftRepo.FindByKey(ctx, key)
	if err != nil {
		if !shared.IsDomainError(err, "NOT_FOUND") {
			return nil, err
		}
		draft = project.NewDraftChange(key)
	}

	if err := draft.Apply(patch); err != nil {
		return nil, err
	}
	if err := s.draftRepo.Save(ctx, draft); err != nil {
		s.logger.Error("failed to save draft change",
			zap.String("project_id", req.ProjectID.String()),
			zap.Error(err))
		return nil, err
	}

	resp := toDraftChangeResponse(draft)
	return &resp, nil
}

// ListByProject returns the stored draft rows of a project, optionally
// narrowed to one category.
func (s *DraftService) ListByProject(ctx context.Context, projectID uuid.UUID, category *catalog.Category) ([]DraftChangeResponse, error) {
	drafts, err := s.draftRepo.ListByProject(ctx, projectID, category)
	if err != nil {
		return nil, err
	}
	out := make([]DraftChangeResponse, 0, len(drafts))
	for i := range drafts {
		out = append(out, toDraftChangeResponse(&drafts[i]))
	}
	return out, nil
}

// Discard drops the draft rows of a project. A nil category clears the
// whole project, otherwise only rows of that category are removed.
func (s *DraftService) Discard(ctx context.Context, projectID uuid.UUID, category *catalog.Category) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return err
	}
	if category != nil && !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "unknown product category")
	}
	if err := s.draftRepo.Clear(ctx, projectID, category); err != nil {
		return err
	}
	s.logger.Info("draft changes discarded",
		zap.String("project_id", projectID.String()))
	return nil
}
