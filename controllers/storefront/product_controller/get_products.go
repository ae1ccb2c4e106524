package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qarsatnahlah/store-backend/models"
	"github.com/qarsatnahlah/store-backend/services"
)

// GetStorefrontProducts godoc
// @Summary Get products for storefront
// @Description Get active products with optional filters and pagination
// @Tags store
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param category query string false "Filter by category id"
// @Param q query string false "Search in title and description"
// @Param flag query string false "Filter by product flag (featured, bestseller, newArrival, preOrder, limitedEdition, bundle)"
// @Param availability query string false "in_stock or out_of_stock"
// @Success 200 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	products := services.GetCatalog().ActiveProducts()
	if hasStorefrontFilters(c) {
		products = filterProducts(products, c)
	}

	total := len(products)
	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		paginate(products, page, limit),
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	))
}
