package catalog

import (
	"context"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/pricing"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/dachpro/backoffice/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService handles price-list maintenance operations
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create adds a new price-list entry
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	category := catalog.Category(req.Category)
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "unknown product category: "+req.Category)
	}

	product, err := catalog.NewProduct(req.Name, category, req.Manufacturer, req.GroupName, req.Unit)
	if err != nil {
		return nil, err
	}

	if req.MapperName != "" {
		product.SetMapperName(req.MapperName)
	}
	if req.QuantityConverter != nil {
		if err := product.SetQuantityConverter(*req.QuantityConverter); err != nil {
			return nil, err
		}
	}

	if err := s.applyPrices(product, req.RetailPrice, req.PurchasePrice, req.SellingPrice); err != nil {
		return nil, err
	}
	if err := applyDiscounts(product, req.BasicDiscount, req.PromotionDiscount, req.AdditionalDiscount, req.SkontoDiscount, req.DiscountMethod); err != nil {
		return nil, err
	}
	if req.MarginPercent != nil {
		if err := product.SetMargin(*req.MarginPercent); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("price-list entry created",
		zap.String("product_id", product.ID.String()),
		zap.String("manufacturer", product.Manufacturer),
		zap.String("group", product.GroupName))

	resp := toProductResponse(product)
	return &resp, nil
}

// Update applies a partial update to a price-list entry
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Manufacturer != nil || req.GroupName != nil {
		manufacturer := product.Manufacturer
		groupName := product.GroupName
		if req.Manufacturer != nil {
			manufacturer = *req.Manufacturer
		}
		if req.GroupName != nil {
			groupName = *req.GroupName
		}
		if err := product.MoveToGroup(manufacturer, groupName); err != nil {
			return nil, err
		}
	}
	if req.MapperName != nil {
		product.SetMapperName(*req.MapperName)
	}
	if req.QuantityConverter != nil {
		if err := product.SetQuantityConverter(*req.QuantityConverter); err != nil {
			return nil, err
		}
	}
	if req.RetailPrice != nil || req.PurchasePrice != nil || req.SellingPrice != nil {
		if err := s.applyPrices(product, req.RetailPrice, req.PurchasePrice, req.SellingPrice); err != nil {
			return nil, err
		}
	}
	if req.BasicDiscount != nil || req.PromotionDiscount != nil || req.AdditionalDiscount != nil ||
		req.SkontoDiscount != nil || req.DiscountMethod != nil {
		if err := applyDiscounts(product, req.BasicDiscount, req.PromotionDiscount, req.AdditionalDiscount, req.SkontoDiscount, req.DiscountMethod); err != nil {
			return nil, err
		}
	}
	if req.MarginPercent != nil {
		if err := product.SetMargin(*req.MarginPercent); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID returns one price-list entry
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// ListByCategory returns the price-list entries of one category, paginated
func (s *ProductService) ListByCategory(ctx context.Context, category catalog.Category, filter shared.Filter) (*ProductListResponse, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "unknown product category")
	}
	products, err := s.productRepo.FindByCategory(ctx, category, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.CountByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return &ProductListResponse{
		Products: out,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// ListManufacturers lists the distinct manufacturers of one category
func (s *ProductService) ListManufacturers(ctx context.Context, category catalog.Category) ([]string, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "unknown product category")
	}
	return s.productRepo.ListManufacturers(ctx, category)
}

// Delete removes one price-list entry
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// DeleteGroup removes every entry of one product group
func (s *ProductService) DeleteGroup(ctx context.Context, key catalog.GroupKey) error {
	products, err := s.productRepo.FindByGroup(ctx, key)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return shared.NewDomainError("GROUP_NOT_FOUND", "No products in group "+key.Manufacturer+"/"+key.GroupName)
	}
	if err := s.productRepo.DeleteByGroup(ctx, key); err != nil {
		return err
	}
	s.logger.Info("product group deleted",
		zap.String("manufacturer", key.Manufacturer),
		zap.String("group", key.GroupName),
		zap.Int("products", len(products)))
	return nil
}

// DeleteManufacturer removes every entry of one manufacturer within a category
func (s *ProductService) DeleteManufacturer(ctx context.Context, category catalog.Category, manufacturer string) error {
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "unknown product category")
	}
	products, err := s.productRepo.FindByManufacturer(ctx, category, manufacturer, shared.Filter{})
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return shared.NewDomainError("MANUFACTURER_NOT_FOUND", "No products of manufacturer "+manufacturer)
	}
	if err := s.productRepo.DeleteByManufacturer(ctx, category, manufacturer); err != nil {
		return err
	}
	s.logger.Info("manufacturer deleted",
		zap.String("category", category.String()),
		zap.String("manufacturer", manufacturer),
		zap.Int("products", len(products)))
	return nil
}

// RenameManufacturer renames a manufacturer across all its entries in one category
func (s *ProductService) RenameManufacturer(ctx context.Context, category catalog.Category, req RenameManufacturerRequest) (int64, error) {
	if !category.IsValid() {
		return 0, shared.NewDomainError("INVALID_CATEGORY", "unknown product category")
	}
	if req.OldName == req.NewName {
		return 0, shared.NewDomainError("INVALID_INPUT", "old and new manufacturer names are identical")
	}
	affected, err := s.productRepo.RenameManufacturer(ctx, category, req.OldName, req.NewName)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, shared.NewDomainError("MANUFACTURER_NOT_FOUND", "No products of manufacturer "+req.OldName)
	}
	s.logger.Info("manufacturer renamed",
		zap.String("category", category.String()),
		zap.String("old_name", req.OldName),
		zap.String("new_name", req.NewName),
		zap.Int64("products", affected))
	return affected, nil
}

// applyPrices sets the three catalog prices, keeping current values for the
// ones the request leaves out.
func (s *ProductService) applyPrices(product *catalog.Product, retail, purchase, selling *decimal.Decimal) error {
	retailValue := product.RetailPrice
	purchaseValue := product.PurchasePrice
	sellingValue := product.SellingPrice
	if retail != nil {
		retailValue = *retail
	}
	if purchase != nil {
		purchaseValue = *purchase
	}
	if selling != nil {
		sellingValue = *selling
	}
	return product.SetPrices(
		valueobject.NewMoneyPLN(retailValue),
		valueobject.NewMoneyPLN(purchaseValue),
		valueobject.NewMoneyPLN(sellingValue),
	)
}

// applyDiscounts sets the discount stack, keeping current values for the
// components the request leaves out.
func applyDiscounts(product *catalog.Product, basic, promotion, additional, skonto *int, method *string) error {
	basicValue := product.BasicDiscount
	promotionValue := product.PromotionDiscount
	additionalValue := product.AdditionalDiscount
	skontoValue := product.SkontoDiscount
	methodValue := product.DiscountMethod
	if basic != nil {
		basicValue = *basic
	}
	if promotion != nil {
		promotionValue = *promotion
	}
	if additional != nil {
		additionalValue = *additional
	}
	if skonto != nil {
		skontoValue = *skonto
	}
	if method != nil {
		methodValue = pricing.DiscountMethod(*method)
	}
	return product.SetDiscounts(basicValue, promotionValue, additionalValue, skontoValue, methodValue)
}
