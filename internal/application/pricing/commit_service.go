package pricing

import (
	"context"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CommitResult summarizes one project save
type CommitResult struct {
	ProductsSaved int `json:"products_saved"`
	GroupsSaved   int `json:"groups_saved"`
	DraftsCleared int `json:"drafts_cleared"`
}

// CommitService turns a project's draft rows into committed state. The whole
// save runs in one transaction: resolved product states and group options are
// written and the drafts cleared together, or not at all.
type CommitService struct {
	scope  TransactionScope
	logger *zap.Logger
}

func NewCommitService(scope TransactionScope, logger *zap.Logger) *CommitService {
	return &CommitService{
		scope:  scope,
		logger: logger,
	}
}

// SaveProject commits every draft row of a project. Products touched by a
// per-product draft are re-resolved individually; a category-wide slider
// draft forces re-resolution of the whole category because it shifts every
// product's selling baseline.
func (s *CommitService) SaveProject(ctx context.Context, projectID uuid.UUID) (*CommitResult, error) {
	result := &CommitResult{}

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ProjectRepo().FindByID(ctx, projectID); err != nil {
			return err
		}

		drafts, err := repos.DraftRepo().ListByProject(ctx, projectID, nil)
		if err != nil {
			return err
		}
		if len(drafts) == 0 {
			return nil
		}
		idx := indexDrafts(drafts)

		saved, err := repos.ProjectProductRepo().ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		savedByProduct := make(map[uuid.UUID]*project.ProjectProduct, len(saved))
		for i := range saved {
			savedByProduct[saved[i].ProductID] = &saved[i]
		}

		affected, err := s.collectAffectedProducts(ctx, repos, idx)
		if err != nil {
			return err
		}

		batch := make([]*project.ProjectProduct, 0, len(affected))
		for _, p := range affected {
			draft := idx.perProduct[p.ID]
			categoryDraft := idx.category[p.Category]

			state, err := project.ResolveState(p, savedByProduct[p.ID], draft, categoryDraft)
			if err != nil {
				return err
			}

			pp := savedByProduct[p.ID]
			if pp == nil {
				pp = project.NewProjectProduct(projectID, p.ID)
			}
			margin, discount := resolvePercents(pp, draft, categoryDraft)
			pp.ApplyState(state, margin, discount)
			batch = append(batch, pp)
		}

		groups, err := s.resolveGroupRows(ctx, repos, projectID, idx)
		if err != nil {
			return err
		}

		if len(batch) > 0 {
			if err := repos.ProjectProductRepo().SaveBatch(ctx, batch); err != nil {
				return err
			}
		}
		if len(groups) > 0 {
			if err := repos.ProjectGroupRepo().SaveBatch(ctx, groups); err != nil {
				return err
			}
		}
		if err := repos.DraftRepo().Clear(ctx, projectID, nil); err != nil {
			return err
		}

		result.ProductsSaved = len(batch)
		result.GroupsSaved = len(groups)
		result.DraftsCleared = len(drafts)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project committed",
		zap.String("project_id", projectID.String()),
		zap.Int("products", result.ProductsSaved),
		zap.Int("groups", result.GroupsSaved))
	return result, nil
}

// collectAffectedProducts loads every product whose committed state the
// drafts can change: those with a per-product draft plus, for each category
// slider row, the whole category.
func (s *CommitService) collectAffectedProducts(ctx context.Context, repos TransactionalRepositories, idx draftIndex) (map[uuid.UUID]*catalog.Product, error) {
	affected := make(map[uuid.UUID]*catalog.Product)

	for category := range idx.category {
		products, err := repos.ProductRepo().FindByCategory(ctx, category, shared.Filter{})
		if err != nil {
			return nil, err
		}
		for i := range products {
			affected[products[i].ID] = &products[i]
		}
	}

	missing := make([]uuid.UUID, 0, len(idx.perProduct))
	for id := range idx.perProduct {
		if _, ok := affected[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		products, err := repos.ProductRepo().FindByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		if len(products) != len(missing) {
			return nil, shared.NewDomainError("DRAFT_PRODUCT_MISSING", "draft refers to a product no longer in the catalog")
		}
		for i := range products {
			affected[products[i].ID] = &products[i]
		}
	}
	return affected, nil
}

// resolvePercents picks the margin and discount percent to store alongside a
// committed row, with per-product drafts beating the category slider and the
// slider beating whatever was stored before.
func resolvePercents(existing *project.ProjectProduct, draft, categoryDraft *project.DraftChange) (margin, discount *decimal.Decimal) {
	margin = existing.MarginPercent
	discount = existing.DiscountPercent
	if categoryDraft != nil {
		if categoryDraft.MarginPercent != nil {
			margin = categoryDraft.MarginPercent
		}
		if categoryDraft.DiscountPercent != nil {
			discount = categoryDraft.DiscountPercent
		}
	}
	if draft != nil {
		if draft.MarginPercent != nil {
			margin = draft.MarginPercent
		}
		if draft.DiscountPercent != nil {
			discount = draft.DiscountPercent
		}
	}
	return margin, discount
}

// resolveGroupRows overlays draft group options on the committed ones and
// enforces that each (category, manufacturer) pair keeps at most one MAIN
// group. Only drafted groups produce rows to write.
func (s *CommitService) resolveGroupRows(ctx context.Context, repos TransactionalRepositories, projectID uuid.UUID, idx draftIndex) ([]*project.ProjectProductGroup, error) {
	if len(idx.perGroup) == 0 {
		return nil, nil
	}

	committed, err := repos.ProjectGroupRepo().ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	finalOptions := make(map[catalog.GroupKey]project.GroupOption, len(committed))
	committedByKey := make(map[catalog.GroupKey]*project.ProjectProductGroup, len(committed))
	for i := range committed {
		key := committed[i].GroupKey()
		finalOptions[key] = committed[i].Option
		committedByKey[key] = &committed[i]
	}

	rows := make([]*project.ProjectProductGroup, 0, len(idx.perGroup))
	for key, draft := range idx.perGroup {
		if draft.GroupOption == nil {
			continue
		}
		finalOptions[key] = *draft.GroupOption

		if row := committedByKey[key]; row != nil {
			row.Option = *draft.GroupOption
			rows = append(rows, row)
			continue
		}
		row, err := project.NewProjectProductGroup(projectID, key, *draft.GroupOption)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	type manufacturerKey struct {
		category     catalog.Category
		manufacturer string
	}
	mains := make(map[manufacturerKey]int)
	for key, option := range finalOptions {
		if option == project.GroupOptionMain {
			mains[manufacturerKey{key.Category, key.Manufacturer}]++
		}
	}
	for mk, count := range mains {
		if count > 1 {
			return nil, shared.NewDomainError("MAIN_OPTION_CONFLICT",
				"manufacturer "+mk.manufacturer+" has more than one MAIN group")
		}
	}
	return rows, nil
}
