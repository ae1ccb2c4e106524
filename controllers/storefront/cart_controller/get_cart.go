package cart_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qarsatnahlah/store-backend/models"
	"github.com/qarsatnahlah/store-backend/services"
	"github.com/qarsatnahlah/store-backend/utils"
)

// GetCart godoc
// @Summary Get the current cart with priced line items
// @Description Get the stored entries, resolved line items and order totals for the caller's cart
// @Tags store
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Success 200 {object} models.ApiResponse
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	store := services.CartStoreFor(utils.CartIDFromRequest(c))

	entries := store.Entries()
	items := services.BuildLineItems(entries, services.GetCatalog())
	cfg := services.GetSiteDiscountConfig()
	totals := services.ComputeGrandTotal(items, &cfg, time.Now())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", gin.H{
		"entries":        entries,
		"items":          items,
		"totals":         totals,
		"total_quantity": entries.TotalQuantity(),
	}))
}
