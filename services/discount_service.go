package services

import (
	"strings"
	"time"

	"github.com/qarsatnahlah/store-backend/models"
	"github.com/shopspring/decimal"
)

// ════════════════════════════════════════════════════════════
// Path: services/discount_service.go
// Site-wide and per-product percentage discount evaluation
// ════════════════════════════════════════════════════════════

// DefaultSiteDiscountLabel is shown when the config carries no label.
const DefaultSiteDiscountLabel = "خصم الموقع"

// Round2 rounds to 2 decimal places, half away from zero. This is the
// currency rounding used everywhere in totals.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ApplyToAmount applies a percentage discount to an amount. The percentage
// is clamped to [0,100] and both derived figures are rounded to 2 decimal
// places. Always computed from the source amount, never incrementally.
func ApplyToAmount(amount, percentage float64) models.DiscountCalc {
	pct := percentage
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	original := decimal.NewFromFloat(amount)
	discountAmount := original.Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100)).Round(2)
	total := original.Sub(discountAmount).Round(2)
	return models.DiscountCalc{
		Original:       amount,
		Percentage:     pct,
		DiscountAmount: discountAmount.InexactFloat64(),
		Total:          total.InexactFloat64(),
	}
}

// IsActiveAt reports whether the site-wide discount applies at the given
// instant. Both window bounds are inclusive; a missing bound leaves that
// side unbounded.
func IsActiveAt(cfg *models.SiteDiscountConfig, now time.Time) bool {
	if cfg == nil || !cfg.Active || cfg.Percentage <= 0 {
		return false
	}
	if cfg.Start != nil && now.Before(*cfg.Start) {
		return false
	}
	if cfg.End != nil && now.After(*cfg.End) {
		return false
	}
	return true
}

// ProductDiscountPercent extracts the percentage discount attached to a
// product. The type string matches percent, percentage, and the historic
// misspelling precent; data already encoded with the misspelling must
// keep working. Anything else contributes 0%.
func ProductDiscountPercent(p *models.Product) float64 {
	if p == nil || p.Discount == nil {
		return 0
	}
	return discountPercent(p.Discount)
}

func discountPercent(d *models.ProductDiscount) float64 {
	if d == nil || d.Value <= 0 {
		return 0
	}
	switch strings.ToLower(strings.TrimSpace(d.Type)) {
	case "percent", "percentage", "precent":
		if d.Value > 100 {
			return 100
		}
		return d.Value
	default:
		return 0
	}
}

// NormalizeDiscountConfig parses the raw operator config into the form the
// pricing core uses. Unparseable dates are treated as absent, matching the
// storefront's lenient date handling.
func NormalizeDiscountConfig(raw models.RawDiscountConfig) models.SiteDiscountConfig {
	cfg := models.SiteDiscountConfig{
		Active:     raw.DiscountActive,
		Percentage: raw.DiscountPercentage,
		Message:    strings.TrimSpace(raw.DiscountMessage),
		Label:      strings.TrimSpace(raw.DiscountLabel),
		ThemeColor: raw.ThemeColor,
		CTAText:    raw.CTAText,
		CTAURL:     raw.CTAURL,
		BannerPos:  raw.BannerPosition,
	}
	cfg.Start = parseConfigDate(raw.StartDate)
	cfg.End = parseConfigDate(raw.EndDate)
	return cfg
}

// SiteDiscountLabel returns the configured label or the default wording.
func SiteDiscountLabel(cfg *models.SiteDiscountConfig) string {
	if cfg != nil && cfg.Label != "" {
		return cfg.Label
	}
	return DefaultSiteDiscountLabel
}

// parseConfigDate accepts ISO datetimes like 2025-10-01T00:00:00+03:00 and
// bare dates like 2025-10-01.
func parseConfigDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
