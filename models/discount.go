package models

import "time"

// ═══════════════════════════════════════════════════════════
// Site-wide Discount Models (external config.json)
// ═══════════════════════════════════════════════════════════

// RawDiscountConfig mirrors the operator-edited config.json document.
type RawDiscountConfig struct {
	DiscountActive     bool    `json:"discount_active"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountMessage    string  `json:"discount_message,omitempty"`
	DiscountLabel      string  `json:"discount_label,omitempty"`
	StartDate          string  `json:"start_date,omitempty"`
	EndDate            string  `json:"end_date,omitempty"`
	ThemeColor         string  `json:"theme_color,omitempty"`
	CTAText            string  `json:"cta_text,omitempty"`
	CTAURL             string  `json:"cta_url,omitempty"`
	BannerPosition     string  `json:"banner_position,omitempty"`
}

// SiteDiscountConfig is the normalized, parsed form used everywhere in the
// pricing core. Nil Start/End mean unbounded on that side.
type SiteDiscountConfig struct {
	Active     bool       `json:"active"`
	Percentage float64    `json:"percentage"`
	Message    string     `json:"message,omitempty"`
	Label      string     `json:"label,omitempty"`
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
	ThemeColor string     `json:"theme_color,omitempty"`
	CTAText    string     `json:"cta_text,omitempty"`
	CTAURL     string     `json:"cta_url,omitempty"`
	BannerPos  string     `json:"banner_position,omitempty"`
}

// DiscountCalc is the result of applying a percentage to an amount.
type DiscountCalc struct {
	Original       float64 `json:"original"`
	Percentage     float64 `json:"percentage"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
}
