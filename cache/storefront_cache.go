package storefront_cache

import (
	"sync"
	"time"

	"github.com/qarsatnahlah/store-backend/models"
)

const TTL = 5 * time.Minute

// ── Catalog document cache ───────────────────────────────────────────────────
// The products.json feed changes rarely; every storefront handler reads
// through this cache so a slow upstream is hit at most once per TTL.

type catalogEntry struct {
	catalog   *models.Catalog
	fetchedAt time.Time
}

var (
	catalogMu    sync.RWMutex
	catalogCache *catalogEntry
)

func GetCatalog() (*models.Catalog, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if catalogCache != nil && time.Since(catalogCache.fetchedAt) < TTL {
		return catalogCache.catalog, true
	}
	return nil, false
}

func SetCatalog(cat *models.Catalog) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalogCache = &catalogEntry{catalog: cat, fetchedAt: time.Now()}
}

// ── Site discount config cache ───────────────────────────────────────────────

type discountEntry struct {
	cfg       models.SiteDiscountConfig
	fetchedAt time.Time
}

var (
	discountMu    sync.RWMutex
	discountCache *discountEntry
)

func GetDiscount() (models.SiteDiscountConfig, bool) {
	discountMu.RLock()
	defer discountMu.RUnlock()
	if discountCache != nil && time.Since(discountCache.fetchedAt) < TTL {
		return discountCache.cfg, true
	}
	return models.SiteDiscountConfig{}, false
}

func SetDiscount(cfg models.SiteDiscountConfig) {
	discountMu.Lock()
	defer discountMu.Unlock()
	discountCache = &discountEntry{cfg: cfg, fetchedAt: time.Now()}
}

// ── Invalidate everything (used by tests and the seed tool) ──────────────────

func Invalidate() {
	catalogMu.Lock()
	catalogCache = nil
	catalogMu.Unlock()

	discountMu.Lock()
	discountCache = nil
	discountMu.Unlock()
}
