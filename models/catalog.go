package models

// ═══════════════════════════════════════════════════════════
// Catalog Models (external products.json feed)
// ═══════════════════════════════════════════════════════════
//
// The catalog is an externally maintained JSON document. It is loaded
// once, cached, and never mutated by this service, so every optional
// field is either a pointer or carries a zero value that means "absent".

// Catalog is the root of the products.json document.
type Catalog struct {
	Currency   string     `json:"currency"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

// Category is a storefront category (honey, herbs, oils, mixes...).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Weight is a purchasable variant of a product. The feed historically
// carried only a `grams` integer; newer entries use unit/amount.
type Weight struct {
	ID             string   `json:"id"`
	Label          string   `json:"label,omitempty"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compareAtPrice,omitempty"`
	Unit           string   `json:"unit,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	Grams          *float64 `json:"grams,omitempty"`
	Default        bool     `json:"default,omitempty"`
	InStock        *bool    `json:"inStock,omitempty"`
}

// CustomPricing lets the customer pick an arbitrary amount (grams or
// milliliters) instead of a fixed weight.
type CustomPricing struct {
	Enabled       bool    `json:"enabled"`
	Unit          string  `json:"unit"`
	PricePerUnit  float64 `json:"pricePerUnit"`
	Min           int     `json:"min"`
	Max           int     `json:"max"`
	Step          int     `json:"step"`
	DefaultAmount *int    `json:"defaultAmount,omitempty"`
	Label         string  `json:"label,omitempty"`
}

// ProductDiscount is a per-product percentage discount. The feed contains
// `percentage`, `percent` and the misspelling `precent` as type strings;
// all three mean the same thing and must keep working.
type ProductDiscount struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Product is a catalog entry. Only status=="active" products are ever
// visible or orderable.
type Product struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Price           float64          `json:"price"`
	CompareAtPrice  *float64         `json:"compareAtPrice,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	Category        string           `json:"category,omitempty"`
	Weights         []Weight         `json:"weights,omitempty"`
	DefaultWeightID string           `json:"defaultWeightId,omitempty"`
	CustomPricing   *CustomPricing   `json:"customPricing,omitempty"`
	Discount        *ProductDiscount `json:"discount,omitempty"`
	StockStatus     string           `json:"stockStatus,omitempty"`
	StockQuantity   *int             `json:"stockQuantity,omitempty"`
	MinOrderQty     int              `json:"minOrderQty,omitempty"`
	// The feed carries both spellings; MaxOrderQt wins when set.
	MaxOrderQt  *int `json:"maxOrderQt,omitempty"`
	MaxOrderQty *int `json:"maxOrderQty,omitempty"`

	Status         string   `json:"status,omitempty"`
	Featured       bool     `json:"featured,omitempty"`
	Bestseller     bool     `json:"bestseller,omitempty"`
	NewArrival     bool     `json:"newArrival,omitempty"`
	PreOrder       bool     `json:"preOrder,omitempty"`
	LimitedEdition bool     `json:"limitedEdition,omitempty"`
	Bundle         bool     `json:"bundle,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	ReviewsCount   *int     `json:"reviewsCount,omitempty"`
	Thumbnail      string   `json:"thumbnail,omitempty"`
	Images         []string `json:"images,omitempty"`
}

// IsActive reports whether the product may be shown or ordered.
// A missing status means active (legacy feed entries).
func (p *Product) IsActive() bool {
	return p.Status == "" || p.Status == "active"
}

// IsOutOfStock reports whether ordering is blocked for the whole product.
func (p *Product) IsOutOfStock() bool {
	if p.StockStatus == "out_of_stock" {
		return true
	}
	return p.StockQuantity != nil && *p.StockQuantity <= 0
}

// MaxOrderQuantity resolves the two historical spellings of the field.
// Returns 0 when no limit is configured.
func (p *Product) MaxOrderQuantity() int {
	if p.MaxOrderQt != nil {
		return *p.MaxOrderQt
	}
	if p.MaxOrderQty != nil {
		return *p.MaxOrderQty
	}
	return 0
}

// FindWeight returns the variant with the given id, or nil.
func (p *Product) FindWeight(variantID string) *Weight {
	for i := range p.Weights {
		if p.Weights[i].ID == variantID {
			return &p.Weights[i]
		}
	}
	return nil
}

// FindProduct looks a product up by id in the catalog, or returns nil.
func (cat *Catalog) FindProduct(id string) *Product {
	if cat == nil {
		return nil
	}
	for i := range cat.Products {
		if cat.Products[i].ID == id {
			return &cat.Products[i]
		}
	}
	return nil
}

// ActiveProducts returns the orderable subset of the catalog.
func (cat *Catalog) ActiveProducts() []Product {
	if cat == nil {
		return nil
	}
	out := make([]Product, 0, len(cat.Products))
	for _, p := range cat.Products {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}
