package models

import "time"

// ═══════════════════════════════════════════════════════════
// Order Models (derived, never persisted server-side)
// ═══════════════════════════════════════════════════════════

// LineItem is one cart entry resolved against the catalog. Recomputed on
// every request; field names match the payload the order webhook has
// always received.
type LineItem struct {
	ID            string  `json:"id"`
	BaseID        string  `json:"baseId"`
	Title         string  `json:"title"`
	VariantID     *string `json:"variantId"`
	VariantLabel  *string `json:"variantLabel"`
	UnitPrice     float64 `json:"unitPrice"`     // after product discount
	OrigUnitPrice float64 `json:"origUnitPrice"` // before product discount
	Qty           int     `json:"qty"`
	LineTotalBefore float64 `json:"lineTotalBefore"`
	LineTotalAfter  float64 `json:"lineTotalAfter"`
}

// OrderTotals carries every total the summary reports. Product discounts
// apply first; the site discount applies to the post-product subtotal.
type OrderTotals struct {
	TotalBefore      float64 `json:"totalBefore"`
	ProductsDiscount float64 `json:"productsDiscount"`
	AfterProducts    float64 `json:"afterProducts"`
	SitePercentage   float64 `json:"sitePct"`
	SiteDiscount     float64 `json:"siteDiscount"`
	SiteLabel        string  `json:"siteLabel,omitempty"`
	GrandTotal       float64 `json:"grand"`
}

// Customer is the shipping/contact block collected at checkout.
type Customer struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	Email    string `json:"email,omitempty"`
}

// CheckoutRequest is the place-order body.
type CheckoutRequest struct {
	CartID        string   `json:"cart_id,omitempty"`
	Customer      Customer `json:"customer" binding:"required"`
	PaymentMethod string   `json:"payment_method,omitempty"`
}

// OrderPayload is sent to the order webhook and echoed to the caller.
type OrderPayload struct {
	OrderID       string      `json:"orderId"`
	Timestamp     time.Time   `json:"timestamp"`
	Customer      Customer    `json:"customer"`
	PaymentMethod string      `json:"paymentMethod"`
	Items         []LineItem  `json:"items"`
	Totals        OrderTotals `json:"totals"`
}

// CheckoutResponse is what the storefront gets back: the payload it may
// display plus the prepared WhatsApp deep link and message text.
type CheckoutResponse struct {
	Payload      OrderPayload `json:"payload"`
	WhatsAppText string       `json:"whatsapp_text"`
	WhatsAppURL  string       `json:"whatsapp_url"`
}
