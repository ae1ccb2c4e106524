package discount_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qarsatnahlah/store-backend/models"
	"github.com/qarsatnahlah/store-backend/services"
)

// GetSiteDiscount godoc
// @Summary Get the site-wide discount banner config
// @Description Get the normalized discount settings plus whether the window is active right now
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/discount [get]
func GetSiteDiscount(c *gin.Context) {
	cfg := services.GetSiteDiscountConfig()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount config fetched successfully", gin.H{
		"config":     cfg,
		"label":      services.SiteDiscountLabel(&cfg),
		"active_now": services.IsActiveAt(&cfg, time.Now()),
	}))
}
