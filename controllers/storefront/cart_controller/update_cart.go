package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qarsatnahlah/store-backend/models"
	"github.com/qarsatnahlah/store-backend/services"
	"github.com/qarsatnahlah/store-backend/utils"
)

// UpdateCart godoc
// @Summary Apply a quantity delta to a cart item
// @Description Add or remove quantity for an item identifier, honoring stock and order-limit constraints
// @Tags store
// @Accept json
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Param change body object{id=string,delta=int} true "Item identifier and signed quantity delta"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/cart/items [post]
func UpdateCart(c *gin.Context) {
	var req struct {
		ID    string `json:"id" binding:"required"`
		Delta int    `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	item, err := models.ParseItemID(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid item identifier"))
		return
	}

	p := services.GetCatalog().FindProduct(item.ProductID)
	if p == nil || !p.IsActive() {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	if item.Kind == models.ItemCustom && req.Delta > 0 {
		if err := services.ValidateCustomAmount(p, item.Unit, item.Amount); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
	}

	// Unknown variants and out-of-stock selections never grow, but the
	// customer can always remove what is already in the cart.
	line := services.ResolveLine(p, item)
	if req.Delta > 0 && (!line.Found || !line.Eligible) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "المنتج غير متوفر حالياً"))
		return
	}

	store := services.CartStoreFor(utils.CartIDFromRequest(c))
	qty, err := store.AddWithConstraints(p, item.Raw, req.Delta)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated successfully", gin.H{
		"id":             item.Raw,
		"qty":            qty,
		"total_quantity": store.TotalQuantity(),
	}))
}
