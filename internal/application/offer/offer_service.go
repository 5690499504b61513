package offer

import (
	"context"
	"sort"
	"time"

	appricing "github.com/dachpro/backoffice/internal/application/pricing"
	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config controls the rendering of generated offers
type Config struct {
	DateFormat string
	Currency   string
	FooterNote string
}

// DefaultConfig returns the rendering defaults used when no configuration
// section overrides them.
func DefaultConfig() Config {
	return Config{
		DateFormat: "02.01.2006",
		Currency:   string(valueobject.PLN),
		FooterNote: "Oferta ważna 30 dni od daty wystawienia.",
	}
}

// StateResolver resolves the effective pricing views of one category.
// Satisfied by the pricing application service; decoupled for testing.
type StateResolver interface {
	ResolveCategory(ctx context.Context, projectID uuid.UUID, category catalog.Category) ([]appricing.ProductPricingView, error)
}

// ProjectReader provides the project header data an offer carries
type ProjectReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error)
}

// OfferService assembles offer documents from resolved pricing state.
// Only products of MAIN or OPTIONAL groups with a positive quantity make
// it into the document.
type OfferService struct {
	resolver StateResolver
	projects ProjectReader
	config   Config
	logger   *zap.Logger
}

// NewOfferService creates a new OfferService
func NewOfferService(resolver StateResolver, projects ProjectReader, config Config, logger *zap.Logger) *OfferService {
	if config.DateFormat == "" {
		config = DefaultConfig()
	}
	return &OfferService{
		resolver: resolver,
		projects: projects,
		config:   config,
		logger:   logger,
	}
}

// BuildOffer generates the offer document for a project from its current
// pricing state, drafts included.
func (s *OfferService) BuildOffer(ctx context.Context, projectID uuid.UUID) (*OfferDocument, error) {
	p, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	categories := []catalog.Category{catalog.CategoryTile, catalog.CategoryGutter, catalog.CategoryAccessory}
	sections := make(map[catalog.GroupKey]*OfferSection)
	var order []catalog.GroupKey

	for _, category := range categories {
		views, err := s.resolver.ResolveCategory(ctx, projectID, category)
		if err != nil {
			return nil, err
		}
		for _, v := range views {
			if !v.GroupOption.IncludedInOffer() || !v.Active {
				continue
			}
			key := catalog.GroupKey{Category: v.Category, Manufacturer: v.Manufacturer, GroupName: v.GroupName}
			section, ok := sections[key]
			if !ok {
				section = &OfferSection{
					Category:     v.Category.String(),
					Manufacturer: v.Manufacturer,
					GroupName:    v.GroupName,
					Option:       v.GroupOption,
				}
				sections[key] = section
				order = append(order, key)
			}

			lineTotal := v.SellingPrice.Mul(v.Quantity).Round(2)
			section.Lines = append(section.Lines, OfferLine{
				ProductID:       v.ProductID,
				Name:            v.Name,
				Unit:            v.Unit,
				Quantity:        v.Quantity,
				UnitPrice:       v.SellingPrice,
				LineTotal:       lineTotal,
				DiscountDisplay: v.EffectiveDiscountDisplay,
			})
			section.Subtotal = section.Subtotal.Add(lineTotal)
		}
	}

	// manufacturers alphabetically, MAIN groups ahead of OPTIONAL ones
	sort.SliceStable(order, func(i, j int) bool {
		a, b := sections[order[i]], sections[order[j]]
		if a.Manufacturer != b.Manufacturer {
			return a.Manufacturer < b.Manufacturer
		}
		if a.Option != b.Option {
			return a.Option == project.GroupOptionMain
		}
		return a.GroupName < b.GroupName
	})

	doc := &OfferDocument{
		ProjectID:    p.ID,
		ProjectName:  p.Name,
		CustomerName: p.CustomerName,
		Address:      p.Address,
		IssuedAt:     time.Now().Format(s.config.DateFormat),
		Currency:     s.config.Currency,
		FooterNote:   s.config.FooterNote,
	}
	for _, key := range order {
		section := sections[key]
		doc.Sections = append(doc.Sections, *section)
		if section.Option == project.GroupOptionMain {
			doc.Total = doc.Total.Add(section.Subtotal)
		}
	}
	doc.TotalDisplay = doc.Total.StringFixed(2) + " " + doc.Currency

	s.logger.Info("offer generated",
		zap.String("project_id", projectID.String()),
		zap.Int("sections", len(doc.Sections)),
		zap.String("total", doc.TotalDisplay))
	return doc, nil
}
