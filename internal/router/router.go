// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anthia/storefront-backend/internal/config"
	"github.com/anthia/storefront-backend/internal/handlers"
	"github.com/anthia/storefront-backend/internal/middleware"
	"github.com/anthia/storefront-backend/internal/services"
	"github.com/anthia/storefront-backend/internal/storage"
)

func Initialize(store storage.KV, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(store)
	cartService := services.NewCartService(store)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Storefront routes
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/featured", catalogHandler.GetFeaturedProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddToCart)
			cart.PUT("/items/:productId", cartHandler.UpdateQuantity)
			cart.DELETE("/items/:productId", cartHandler.RemoveFromCart)
			cart.DELETE("", cartHandler.ClearCart)
		}

		// Admin routes; create and update carry embedded images
		admin := v1.Group("/admin/products")
		{
			admin.POST("", middleware.UploadRateLimit(), catalogHandler.CreateProduct)
			admin.PUT("/reorder", catalogHandler.ReorderProducts)
			admin.PUT("/:id", middleware.UploadRateLimit(), catalogHandler.UpdateProduct)
			admin.DELETE("/:id", catalogHandler.DeleteProduct)
		}
	}

	return r
}
