package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qarsatnahlah/store-backend/models"
	"github.com/qarsatnahlah/store-backend/services"
)

// GetStorefrontProductByID godoc
// @Summary Get single product details for storefront
// @Description Get detailed product information by ID, including the resolved default variant
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	productID := c.Param("id")

	p := services.GetCatalog().FindProduct(productID)
	if p == nil || !p.IsActive() {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	data := gin.H{"product": p}
	if w := services.PickDefaultWeight(p); w != nil {
		data["default_variant"] = gin.H{
			"id":    w.ID,
			"label": services.WeightLabel(w),
			"price": w.Price,
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", data))
}
