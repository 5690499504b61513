package handler

import (
	"strings"

	catalogapp "github.com/dachpro/backoffice/internal/application/catalog"
	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles price-list catalog endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// parseCategory reads and validates the :category path parameter.
// Returns false after writing the error response when the value is unknown.
func (h *ProductHandler) parseCategory(c *gin.Context) (catalog.Category, bool) {
	category := catalog.Category(strings.ToUpper(c.Param("category")))
	if !category.IsValid() {
		h.BadRequest(c, "unknown category: "+c.Param("category"))
		return "", false
	}
	return category, true
}

// Create adds a price-list entry
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// Get returns one price-list entry by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// ListByCategory returns the paginated price list of one category
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	category, ok := h.parseCategory(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	list, err := h.productService.ListByCategory(c.Request.Context(), category, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, list.Products, list.Total, list.Page, list.PageSize)
}

// ListManufacturers returns the distinct manufacturers of one category
func (h *ProductHandler) ListManufacturers(c *gin.Context) {
	category, ok := h.parseCategory(c)
	if !ok {
		return
	}

	manufacturers, err := h.productService.ListManufacturers(c.Request.Context(), category)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"manufacturers": manufacturers})
}

// Update patches a price-list entry
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product ID")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes one price-list entry
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteGroup removes every product of one group
func (h *ProductHandler) DeleteGroup(c *gin.Context) {
	category, ok := h.parseCategory(c)
	if !ok {
		return
	}

	key := catalog.GroupKey{
		Category:     category,
		Manufacturer: c.Param("manufacturer"),
		GroupName:    c.Param("group"),
	}

	if err := h.productService.DeleteGroup(c.Request.Context(), key); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteManufacturer removes every product of one manufacturer within a category
func (h *ProductHandler) DeleteManufacturer(c *gin.Context) {
	category, ok := h.parseCategory(c)
	if !ok {
		return
	}

	err := h.productService.DeleteManufacturer(c.Request.Context(), category, c.Param("manufacturer"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RenameManufacturer renames a manufacturer across a whole category
func (h *ProductHandler) RenameManufacturer(c *gin.Context) {
	category, ok := h.parseCategory(c)
	if !ok {
		return
	}

	var req catalogapp.RenameManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.productService.RenameManufacturer(c.Request.Context(), category, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"products_updated": updated})
}
