package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/qarsatnahlah/store-backend/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

// main writes a sample products.json and config.json for local development
// Usage: go run cmd/seed/main.go [output-dir]
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("QARSAT NAHLAH - Sample Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	outDir := "."
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	catalog := models.Catalog{
		Currency: "EGP",
		Categories: []models.Category{
			{ID: "honey", Name: "عسل"},
			{ID: "herbs", Name: "أعشاب"},
			{ID: "oils", Name: "زيوت"},
		},
		Products: []models.Product{
			{
				ID:          "sidr-honey",
				Title:       "عسل سدر جبلي",
				Description: "عسل سدر طبيعي من المرتفعات",
				Price:       450,
				Category:    "honey",
				Weights: []models.Weight{
					{ID: "w250", Unit: "g", Amount: floatPtr(250), Price: 450},
					{ID: "w500", Unit: "g", Amount: floatPtr(500), Price: 850, CompareAtPrice: floatPtr(900)},
					{ID: "w1000", Unit: "g", Amount: floatPtr(1000), Price: 1600, Default: true},
				},
				DefaultWeightID: "w500",
				Status:          "active",
				Featured:        true,
				Bestseller:      true,
			},
			{
				ID:       "chamomile",
				Title:    "بابونج مجفف",
				Price:    0.4,
				Category: "herbs",
				CustomPricing: &models.CustomPricing{
					Enabled:       true,
					Unit:          "g",
					PricePerUnit:  0.4,
					Min:           100,
					Max:           2000,
					Step:          50,
					DefaultAmount: intPtr(250),
				},
				// Legacy feeds misspell the discount type; it has to keep working
				Discount:    &models.ProductDiscount{Type: "precent", Value: 10},
				Status:      "active",
				MinOrderQty: 2,
			},
			{
				ID:       "black-seed-oil",
				Title:    "زيت حبة البركة",
				Price:    320,
				Category: "oils",
				Weights: []models.Weight{
					{ID: "v125", Unit: "ml", Amount: floatPtr(125), Price: 320},
					{ID: "v250", Unit: "ml", Amount: floatPtr(250), Price: 600, InStock: boolPtr(false)},
				},
				Discount:      &models.ProductDiscount{Type: "percentage", Value: 15},
				Status:        "active",
				StockQuantity: intPtr(8),
				MaxOrderQt:    intPtr(5),
			},
			{
				ID:     "retired-blend",
				Title:  "خلطة قديمة",
				Price:  200,
				Status: "archived",
			},
		},
	}

	now := time.Now()
	discount := models.RawDiscountConfig{
		DiscountActive:     true,
		DiscountPercentage: 5,
		DiscountMessage:    "خصم افتتاح الموقع",
		DiscountLabel:      "خصم الافتتاح",
		StartDate:          now.AddDate(0, 0, -1).Format("2006-01-02"),
		EndDate:            now.AddDate(0, 1, 0).Format("2006-01-02"),
		ThemeColor:         "#d4a017",
		CTAText:            "تسوق الآن",
		BannerPosition:     "top",
	}

	writeJSON(filepath.Join(outDir, "data", "products.json"), catalog)
	writeJSON(filepath.Join(outDir, "config.json"), discount)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Sample Data Written Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Products:   %d (%d active)\n", len(catalog.Products), len(catalog.ActiveProducts()))
	fmt.Printf("Categories: %d\n", len(catalog.Categories))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse the catalog at GET /api/v1/store/catalog")
}

func writeJSON(path string, v any) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to serialize %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	log.Printf("✓ Wrote %s", path)
}
