package services

import (
	"time"

	"github.com/qarsatnahlah/store-backend/models"
	"github.com/shopspring/decimal"
)

// ════════════════════════════════════════════════════════════
// Path: services/order_service.go
// Cart entries + catalog → line items → order totals
// ════════════════════════════════════════════════════════════

// BuildLineItems resolves every cart entry against the catalog. Entries
// that no longer resolve (removed products, unknown variants, items gone
// out of stock, malformed identifiers) are skipped silently: a stale
// stored identifier must never break totals.
func BuildLineItems(entries models.CartEntries, cat *models.Catalog) []models.LineItem {
	items := make([]models.LineItem, 0, len(entries))
	for _, entry := range entries {
		if entry.Qty <= 0 {
			continue
		}
		item, err := models.ParseItemID(entry.ID)
		if err != nil {
			continue
		}
		p := cat.FindProduct(item.ProductID)
		if p == nil || !p.IsActive() {
			continue
		}
		resolved := ResolveLine(p, item)
		if !resolved.Found || !resolved.Eligible {
			continue
		}

		pct := ProductDiscountPercent(p)
		origUnit := decimal.NewFromFloat(resolved.UnitPrice)
		unit := origUnit
		if pct > 0 {
			factor := decimal.NewFromInt(1).
				Sub(decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100)))
			unit = origUnit.Mul(factor)
		}
		qty := decimal.NewFromInt(int64(entry.Qty))

		line := models.LineItem{
			ID:              entry.ID,
			BaseID:          p.ID,
			Title:           p.Title,
			UnitPrice:       unit.InexactFloat64(),
			OrigUnitPrice:   origUnit.InexactFloat64(),
			Qty:             entry.Qty,
			LineTotalBefore: origUnit.Mul(qty).Round(2).InexactFloat64(),
			LineTotalAfter:  unit.Mul(qty).Round(2).InexactFloat64(),
		}
		if item.Kind != models.ItemPlain && resolved.Label != "" {
			label := resolved.Label
			line.Title = p.Title + " - " + label
			line.VariantLabel = &label
		}
		if item.Kind == models.ItemFixed {
			variantID := item.VariantID
			line.VariantID = &variantID
		}
		items = append(items, line)
	}
	return items
}

// ComputeTotals derives the product-level totals from a line item slice.
// Stateless and idempotent: the same input always yields the same totals.
func ComputeTotals(items []models.LineItem) models.OrderTotals {
	before := decimal.Zero
	after := decimal.Zero
	for _, it := range items {
		before = before.Add(decimal.NewFromFloat(it.LineTotalBefore))
		after = after.Add(decimal.NewFromFloat(it.LineTotalAfter))
	}
	return models.OrderTotals{
		TotalBefore:      before.Round(2).InexactFloat64(),
		AfterProducts:    after.Round(2).InexactFloat64(),
		ProductsDiscount: before.Sub(after).Round(2).InexactFloat64(),
	}
}

// ComputeGrandTotal layers the site-wide discount on top of the product
// totals. The site percentage applies to the post-product subtotal, never
// to the original amount, and only when the config is active at `now`.
func ComputeGrandTotal(items []models.LineItem, cfg *models.SiteDiscountConfig, now time.Time) models.OrderTotals {
	totals := ComputeTotals(items)
	totals.SiteLabel = SiteDiscountLabel(cfg)
	if IsActiveAt(cfg, now) {
		totals.SitePercentage = cfg.Percentage
		calc := ApplyToAmount(totals.AfterProducts, cfg.Percentage)
		totals.SiteDiscount = calc.DiscountAmount
		totals.GrandTotal = calc.Total
		return totals
	}
	totals.GrandTotal = totals.AfterProducts
	return totals
}
