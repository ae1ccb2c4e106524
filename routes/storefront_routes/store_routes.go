package storefront_routes

import (
	"time"

	store_cart "github.com/qarsatnahlah/store-backend/controllers/storefront/cart_controller"
	store_checkout "github.com/qarsatnahlah/store-backend/controllers/storefront/checkout_controller"
	store_discount "github.com/qarsatnahlah/store-backend/controllers/storefront/discount_controller"
	store_product "github.com/qarsatnahlah/store-backend/controllers/storefront/product_controller"
	"github.com/gin-gonic/gin"
	"github.com/qarsatnahlah/store-backend/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	store.GET("/catalog", store_product.GetCatalog)

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}

	// Site-wide discount banner
	store.GET("/discount", store_discount.GetSiteDiscount)

	// Cart routes
	store.GET("/cart", store_cart.GetCart)
	store.POST("/cart/items", store_cart.UpdateCart)

	// Checkout is the only write-heavy endpoint, so it carries the limiter
	store.POST("/checkout",
		middleware.RateLimiter(10, time.Minute),
		store_checkout.PlaceOrder,
	)
}
