package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qarsatnahlah/store-backend/models"
	"github.com/shopspring/decimal"
)

// ════════════════════════════════════════════════════════════
// Path: services/pricing_service.go
// Variant resolution: item identifier → unit price, label, eligibility
// ════════════════════════════════════════════════════════════

// ResolvedLine is the outcome of resolving one item identifier against a
// product. Found=false means the identifier does not address anything in
// this product; Eligible=false means the price resolves (for display) but
// the item must not be ordered (out of stock).
type ResolvedLine struct {
	UnitPrice      float64
	CompareAtPrice *float64
	Label          string
	Eligible       bool
	Found          bool
}

// ResolveLine resolves a parsed item identifier against a product record.
// Never panics on malformed input; unresolvable identifiers return a
// zero-value result with Found=false.
func ResolveLine(p *models.Product, item models.ItemID) ResolvedLine {
	if p == nil || item.ProductID != p.ID {
		return ResolvedLine{}
	}

	switch item.Kind {
	case models.ItemCustom:
		cp := p.CustomPricing
		if cp == nil || !cp.Enabled || cp.PricePerUnit <= 0 {
			return ResolvedLine{}
		}
		if normalizeUnit(cp.Unit) != item.Unit {
			return ResolvedLine{}
		}
		price := decimal.NewFromFloat(cp.PricePerUnit).
			Mul(decimal.NewFromInt(int64(item.Amount)))
		return ResolvedLine{
			UnitPrice: price.InexactFloat64(),
			Label:     FormatUnit(item.Unit, float64(item.Amount)),
			Eligible:  !p.IsOutOfStock(),
			Found:     true,
		}

	case models.ItemFixed:
		w := p.FindWeight(item.VariantID)
		if w == nil {
			return ResolvedLine{}
		}
		res := ResolvedLine{
			UnitPrice: w.Price,
			Label:     WeightLabel(w),
			Eligible:  !p.IsOutOfStock() && (w.InStock == nil || *w.InStock),
			Found:     true,
		}
		if w.CompareAtPrice != nil && *w.CompareAtPrice > w.Price {
			res.CompareAtPrice = w.CompareAtPrice
		}
		return res

	default:
		res := ResolvedLine{
			UnitPrice: p.Price,
			Eligible:  !p.IsOutOfStock(),
			Found:     true,
		}
		if p.CompareAtPrice != nil && *p.CompareAtPrice > p.Price {
			res.CompareAtPrice = p.CompareAtPrice
		}
		return res
	}
}

// PickDefaultWeight selects the variant shown when nothing is selected yet.
// Precedence: defaultWeightId reference → default flag → first in-stock →
// first in list order. Nil only when the product has no variants.
func PickDefaultWeight(p *models.Product) *models.Weight {
	if p == nil || len(p.Weights) == 0 {
		return nil
	}
	if p.DefaultWeightID != "" {
		if w := p.FindWeight(p.DefaultWeightID); w != nil {
			return w
		}
	}
	for i := range p.Weights {
		if p.Weights[i].Default {
			return &p.Weights[i]
		}
	}
	for i := range p.Weights {
		w := &p.Weights[i]
		if w.InStock == nil || *w.InStock {
			return w
		}
	}
	return &p.Weights[0]
}

// normalizeUnit folds the unit spellings seen in the feed into canonical
// short forms: g, kg, ml, l, piece. Unknown units pass through unchanged.
func normalizeUnit(unit string) string {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g", "gram", "grams":
		return "g"
	case "kg", "kilogram", "kilograms":
		return "kg"
	case "ml", "milliliter", "millilitre":
		return "ml"
	case "l", "lt", "liter", "litre":
		return "l"
	case "piece", "pcs", "pc", "count", "unit":
		return "piece"
	default:
		return strings.ToLower(strings.TrimSpace(unit))
	}
}

// FormatUnit renders the short Arabic label for a unit amount. The exact
// wording is what the storefront has always displayed.
func FormatUnit(unit string, amount float64) string {
	amt := formatAmount(amount)
	switch normalizeUnit(unit) {
	case "g":
		switch {
		case amount >= 1000:
			return "كيلو"
		case amount == 500:
			return "500 جم"
		case amount == 250:
			return "250 جم"
		default:
			return amt + " جم"
		}
	case "kg":
		return amt + " كيلو"
	case "ml":
		return amt + " مل"
	case "l":
		return amt + " لتر"
	case "piece":
		return "بالقطعة"
	default:
		return amt + " " + unit
	}
}

// WeightLabel derives the display label for a variant: explicit label
// first, then the unit descriptor, then the legacy grams field.
func WeightLabel(w *models.Weight) string {
	if w == nil {
		return ""
	}
	if w.Label != "" {
		return w.Label
	}
	if w.Unit != "" && w.Amount != nil {
		return FormatUnit(w.Unit, *w.Amount)
	}
	if w.Grams != nil {
		return FormatUnit("g", *w.Grams)
	}
	return ""
}

// ValidateCustomAmount checks a requested custom amount against the
// product's pricing rule. The returned error message is user-facing.
func ValidateCustomAmount(p *models.Product, unit string, amount int) error {
	cp := p.CustomPricing
	if cp == nil || !cp.Enabled || cp.PricePerUnit <= 0 {
		return fmt.Errorf("هذا المنتج لا يدعم تحديد كمية مخصصة")
	}
	cpUnit := normalizeUnit(cp.Unit)
	if cpUnit != unit {
		return fmt.Errorf("هذا المنتج لا يدعم تحديد كمية مخصصة")
	}
	unitWord := "جرام"
	if cpUnit == "ml" {
		unitWord = "مللي"
	}
	if cp.Min > 0 && amount < cp.Min {
		return fmt.Errorf("الحد الأدنى %d %s", cp.Min, unitWord)
	}
	if cp.Max > 0 && amount > cp.Max {
		return fmt.Errorf("الحد الأقصى %d %s", cp.Max, unitWord)
	}
	if step := cp.Step; step > 1 && amount%step != 0 {
		return fmt.Errorf("يجب أن تكون القيمة مضاعفات %d", step)
	}
	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
