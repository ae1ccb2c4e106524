package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/qarsatnahlah/store-backend/models"
)

// ════════════════════════════════════════════════════════════
// Path: services/checkout_service.go
// Order summary text, WhatsApp deep link, order webhook
// ════════════════════════════════════════════════════════════

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var webhookClient = &http.Client{Timeout: 10 * time.Second}

// NewOrderID generates a human-checkable order id: a short random token
// plus a timestamp-derived suffix. Unique enough for manual deduplication;
// cryptographic uniqueness is not needed here.
func NewOrderID() string {
	token := make([]byte, 6)
	for i := range token {
		token[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return "ORD-" + string(token) + "-" + millis[len(millis)-5:]
}

// FormatPrice renders an amount the way the storefront always has:
// two decimals with a trailing ".00" stripped, suffixed with the
// currency word.
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")
	return s + " ج.م"
}

// formatPercent drops insignificant decimals from a percentage.
func formatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

// BuildWhatsAppMessage renders the order into the multi-line Arabic
// summary sent over WhatsApp. The set and order of facts is fixed:
// header, order id, customer block, payment method, numbered items with
// per-line discount detail, then the totals block.
func BuildWhatsAppMessage(p models.OrderPayload) string {
	lines := []string{
		"طلب جديد من المتجر:",
		"رقم الطلب: " + p.OrderID,
		"--------------------------",
		"الاسم: " + p.Customer.FullName,
		"الهاتف: " + p.Customer.Phone,
		"العنوان: " + p.Customer.Address + ", " + p.Customer.City,
		"طريقة الدفع: " + p.PaymentMethod,
		"--------------------------",
		"تفاصيل المنتجات:",
	}
	for i, it := range p.Items {
		lines = append(lines, fmt.Sprintf("%d) %s", i+1, it.Title))
		lines = append(lines, fmt.Sprintf("- قبل الخصم: %s × %d = %s",
			FormatPrice(it.OrigUnitPrice), it.Qty, FormatPrice(it.LineTotalBefore)))
		if it.OrigUnitPrice != it.UnitPrice {
			lineDisc := it.LineTotalBefore - it.LineTotalAfter
			lines = append(lines, fmt.Sprintf("- خصم المنتج: -%s  |  بعد خصم المنتج: %s",
				FormatPrice(lineDisc), FormatPrice(it.LineTotalAfter)))
		} else {
			lines = append(lines, "- الإجمالي: "+FormatPrice(it.LineTotalAfter))
		}
	}
	lines = append(lines,
		"--------------------------",
		"الإجمالي قبل الخصومات: "+FormatPrice(p.Totals.TotalBefore),
		"خصم المنتجات: -"+FormatPrice(p.Totals.ProductsDiscount),
		"بعد خصم المنتجات: "+FormatPrice(p.Totals.AfterProducts),
	)
	if p.Totals.SitePercentage > 0 && p.Totals.SiteDiscount > 0 {
		label := p.Totals.SiteLabel
		if label == "" {
			label = DefaultSiteDiscountLabel
		}
		lines = append(lines, fmt.Sprintf("%s (%s%%): -%s",
			label, formatPercent(p.Totals.SitePercentage), FormatPrice(p.Totals.SiteDiscount)))
	}
	lines = append(lines,
		"الإجمالي النهائي: "+FormatPrice(p.Totals.GrandTotal),
		"--------------------------",
		"شكراً لكم",
	)
	return strings.Join(lines, "\n")
}

// WhatsAppURL composes the deep link that opens the chat with the order
// text prefilled. Mobile user agents get the app scheme; everything else
// gets the web endpoint.
func WhatsAppURL(phone, text string, mobile bool) string {
	q := url.Values{}
	q.Set("phone", phone)
	q.Set("text", text)
	if mobile {
		return "whatsapp://send?" + q.Encode()
	}
	return "https://api.whatsapp.com/send?" + q.Encode()
}

// SendOrderWebhook posts the payload to the operator-configured endpoint
// as a `payload` form field, the format the spreadsheet webhook expects.
// Fire-and-forget: failures are logged and never block checkout.
func SendOrderWebhook(webhookURL string, payload models.OrderPayload) error {
	if webhookURL == "" {
		return nil
	}
	deliveryID := uuid.NewString()
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Webhook %s: failed to serialize order %s: %v", deliveryID, payload.OrderID, err)
		return err
	}
	form := url.Values{"payload": {string(body)}}
	resp, err := webhookClient.PostForm(webhookURL, form)
	if err != nil {
		log.Printf("❌ Webhook %s: delivery failed for order %s: %v", deliveryID, payload.OrderID, err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		log.Printf("❌ Webhook %s: order %s rejected with status %d", deliveryID, payload.OrderID, resp.StatusCode)
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	log.Printf("✅ Webhook %s: order %s delivered (status %d)", deliveryID, payload.OrderID, resp.StatusCode)
	return nil
}
