package config

import (
	"log"
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Application Configuration
// ═══════════════════════════════════════════════════════════

var (
	// Port the HTTP server listens on.
	Port string

	// CatalogSource is the products.json feed: an http(s) URL or a local
	// file path. The deployed site serves it as a static document.
	CatalogSource string

	// DiscountConfigSource is the site-wide discount config.json.
	DiscountConfigSource string

	// WhatsAppNumber receives checkout messages, international format
	// without the leading plus.
	WhatsAppNumber string

	// OrderWebhookURL is the spreadsheet webhook. Empty disables delivery.
	OrderWebhookURL string

	// CartDataDir holds file-backed carts when Redis is not configured.
	CartDataDir string

	// AllowOrigins for CORS.
	AllowOrigins []string
)

// Load reads the environment. Every value has a local-dev fallback, so a
// bare `go run .` works against the checked-in sample data.
func Load() {
	Port = getEnv("PORT", "8081")
	CatalogSource = getEnv("CATALOG_SOURCE", "data/products.json")
	DiscountConfigSource = getEnv("DISCOUNT_CONFIG_SOURCE", "config.json")
	WhatsAppNumber = getEnv("WHATSAPP_NUMBER", "201018288736")
	OrderWebhookURL = os.Getenv("ORDER_WEBHOOK_URL")
	CartDataDir = getEnv("CART_DATA_DIR", "data/carts")

	origins := getEnv("ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")
	AllowOrigins = strings.Split(origins, ",")
	for i := range AllowOrigins {
		AllowOrigins[i] = strings.TrimSpace(AllowOrigins[i])
	}

	if OrderWebhookURL == "" {
		log.Println("⚠️ ORDER_WEBHOOK_URL not set, order webhook delivery disabled")
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
