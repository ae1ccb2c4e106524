package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	storefront_cache "github.com/qarsatnahlah/store-backend/cache"
	"github.com/qarsatnahlah/store-backend/config"
	"github.com/qarsatnahlah/store-backend/models"
)

// ════════════════════════════════════════════════════════════
// Path: services/catalog_service.go
// Loading the external products.json and config.json documents
// ════════════════════════════════════════════════════════════

var documentClient = &http.Client{Timeout: 10 * time.Second}

// fetchDocument reads a JSON document from an http(s) URL or a local file
// path. Both sources are treated as read-only external inputs.
func fetchDocument(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := documentClient.Get(source)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(source)
}

// LoadCatalogFrom fetches and parses a catalog document.
func LoadCatalogFrom(source string) (*models.Catalog, error) {
	data, err := fetchDocument(source)
	if err != nil {
		return nil, err
	}
	var cat models.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &cat, nil
}

// GetCatalog returns the cached catalog, loading it from the configured
// source on a miss. A missing or malformed document degrades to an empty
// catalog (no sellable items) and is never an error for callers.
func GetCatalog() *models.Catalog {
	if cat, ok := storefront_cache.GetCatalog(); ok {
		return cat
	}
	cat, err := LoadCatalogFrom(config.CatalogSource)
	if err != nil {
		log.Printf("⚠️ Failed to load catalog from %s: %v", config.CatalogSource, err)
		return &models.Catalog{}
	}
	storefront_cache.SetCatalog(cat)
	return cat
}

// LoadDiscountConfigFrom fetches and normalizes a site discount config.
func LoadDiscountConfigFrom(source string) (models.SiteDiscountConfig, error) {
	data, err := fetchDocument(source)
	if err != nil {
		return models.SiteDiscountConfig{}, err
	}
	var raw models.RawDiscountConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.SiteDiscountConfig{}, fmt.Errorf("parse discount config: %w", err)
	}
	return NormalizeDiscountConfig(raw), nil
}

// GetSiteDiscountConfig returns the cached site discount config. Fetch
// failure means the discount is simply inactive; totals stay defined.
func GetSiteDiscountConfig() models.SiteDiscountConfig {
	if cfg, ok := storefront_cache.GetDiscount(); ok {
		return cfg
	}
	cfg, err := LoadDiscountConfigFrom(config.DiscountConfigSource)
	if err != nil {
		log.Printf("⚠️ Failed to load discount config from %s: %v", config.DiscountConfigSource, err)
		return models.SiteDiscountConfig{}
	}
	storefront_cache.SetDiscount(cfg)
	return cfg
}
