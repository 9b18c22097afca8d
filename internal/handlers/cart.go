// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anthia/storefront-backend/internal/services"
	"github.com/anthia/storefront-backend/internal/utils"
)

type CartHandler struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
}

func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.cartService.ListCart()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	totals := services.Totals(items)
	utils.SuccessResponse(c, gin.H{
		"items": items,
		"totals": gin.H{
			"subtotal": totals.Subtotal.StringFixed(2),
			"tax":      totals.Tax.StringFixed(2),
			"total":    totals.Total.StringFixed(2),
		},
	})
}

type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	products, err := h.catalogService.ListProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	for _, p := range products {
		if p.ID == req.ProductID {
			if err := h.cartService.AddToCart(p, req.Quantity); err != nil {
				utils.InternalErrorResponse(c, err.Error())
				return
			}
			utils.NoContentResponse(c)
			return
		}
	}
	utils.NotFoundResponse(c, "Product not found")
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PUT /cart/items/:productId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	// The cart service applies the value verbatim; the boundary clamps.
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	if err := h.cartService.UpdateQuantity(c.Param("productId"), req.Quantity); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.NoContentResponse(c)
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	if err := h.cartService.RemoveFromCart(c.Param("productId")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.NoContentResponse(c)
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.ClearCart(); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.NoContentResponse(c)
}
