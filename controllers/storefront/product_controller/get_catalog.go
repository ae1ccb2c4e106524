package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qarsatnahlah/store-backend/models"
	"github.com/qarsatnahlah/store-backend/services"
)

// GetCatalog godoc
// @Summary Get the full storefront catalog
// @Description Get currency, categories and all active products in one document
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/catalog [get]
func GetCatalog(c *gin.Context) {
	cat := services.GetCatalog()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog fetched successfully", gin.H{
		"currency":   cat.Currency,
		"categories": cat.Categories,
		"products":   cat.ActiveProducts(),
	}))
}
