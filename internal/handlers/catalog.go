// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anthia/storefront-backend/internal/models"
	"github.com/anthia/storefront-backend/internal/services"
	"github.com/anthia/storefront-backend/internal/utils"
	"github.com/anthia/storefront-backend/internal/views"
)

const featuredHomeLimit = 4

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	filtered := views.FilterByCategory(products, c.DefaultQuery("category", views.CategoryAll))
	sorted := views.SortProducts(filtered, c.DefaultQuery("sort", views.SortFeatured))

	utils.SuccessResponse(c, gin.H{
		"products": sorted,
		"count":    len(sorted),
	})
}

// GET /products/featured
func (h *CatalogHandler) GetFeaturedProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": views.FeaturedProducts(products, featuredHomeLimit),
	})
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	id := c.Param("id")
	for _, p := range products {
		if p.ID == id {
			utils.SuccessResponse(c, p)
			return
		}
	}
	utils.NotFoundResponse(c, "Product not found")
}

// POST /admin/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&input)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := utils.ValidateImageRef(input.ImageURL); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	product, err := h.catalogService.AddProduct(input)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, product)
}

// PUT /admin/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&patch)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if patch.ImageURL != nil {
		if err := utils.ValidateImageRef(*patch.ImageURL); err != nil {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
	}

	if err := h.catalogService.UpdateProduct(c.Param("id"), patch); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.NoContentResponse(c)
}

// DELETE /admin/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.NoContentResponse(c)
}

type ReorderRequest struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1"`
}

// PUT /admin/products/reorder
func (h *CatalogHandler) ReorderProducts(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.catalogService.ReorderProducts(req.ProductIDs); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.NoContentResponse(c)
}
