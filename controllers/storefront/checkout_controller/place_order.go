package checkout_controller

import (
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qarsatnahlah/store-backend/config"
	"github.com/qarsatnahlah/store-backend/models"
	"github.com/qarsatnahlah/store-backend/services"
	"github.com/qarsatnahlah/store-backend/utils"
)

const defaultPaymentMethod = "غير محدد"

var (
	// Egyptian mobile numbers: 01 followed by nine digits.
	phoneRe = regexp.MustCompile(`^01\d{9}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	digitStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// PlaceOrder godoc
// @Summary Place an order from the current cart
// @Description Validate customer details, price the cart, fire the order webhook and return the WhatsApp handoff link
// @Tags store
// @Accept json
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Param order body models.CheckoutRequest true "Customer and payment details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/checkout [post]
func PlaceOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	req.Customer.Phone = digitStripper.Replace(req.Customer.Phone)
	if !phoneRe.MatchString(req.Customer.Phone) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "رقم الهاتف غير صحيح"))
		return
	}
	if req.Customer.Email != "" && !emailRe.MatchString(req.Customer.Email) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "البريد الإلكتروني غير صحيح"))
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = defaultPaymentMethod
	}

	cartID := req.CartID
	if cartID == "" {
		cartID = utils.CartIDFromRequest(c)
	}
	store := services.CartStoreFor(cartID)

	items := services.BuildLineItems(store.Entries(), services.GetCatalog())
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	now := time.Now()
	cfg := services.GetSiteDiscountConfig()

	payload := models.OrderPayload{
		OrderID:       services.NewOrderID(),
		Timestamp:     now,
		Customer:      req.Customer,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		Totals:        services.ComputeGrandTotal(items, &cfg, now),
	}

	text := services.BuildWhatsAppMessage(payload)
	waURL := services.WhatsAppURL(config.WhatsAppNumber, text, utils.IsMobileUA(c.Request.UserAgent()))

	// Delivery is best effort; the customer still gets their WhatsApp link
	// when the webhook endpoint is down.
	go services.SendOrderWebhook(config.OrderWebhookURL, payload)

	log.Printf("✅ Order placed: %s - Total: %s - Items: %d",
		payload.OrderID, services.FormatPrice(payload.Totals.GrandTotal), len(items))

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", models.CheckoutResponse{
		Payload:      payload,
		WhatsAppText: text,
		WhatsAppURL:  waURL,
	}))
}
