package services

import (
	"testing"

	"github.com/qarsatnahlah/store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

func testProduct() *models.Product {
	return &models.Product{
		ID:    "sidr-honey",
		Title: "عسل سدر جبلي",
		Price: 450,
		Weights: []models.Weight{
			{ID: "w250", Unit: "g", Amount: floatPtr(250), Price: 450},
			{ID: "w500", Unit: "g", Amount: floatPtr(500), Price: 850, CompareAtPrice: floatPtr(900)},
			{ID: "w1000", Unit: "g", Amount: floatPtr(1000), Price: 1600, InStock: boolPtr(false)},
		},
		Status: "active",
	}
}

func TestResolveLineFixedVariant(t *testing.T) {
	p := testProduct()

	item, err := models.ParseItemID("sidr-honey::w500")
	require.NoError(t, err)

	line := ResolveLine(p, item)
	assert.True(t, line.Found)
	assert.True(t, line.Eligible)
	assert.Equal(t, 850.0, line.UnitPrice)
	assert.Equal(t, "500 جم", line.Label)
	require.NotNil(t, line.CompareAtPrice)
	assert.Equal(t, 900.0, *line.CompareAtPrice)
}

func TestResolveLineVariantOutOfStock(t *testing.T) {
	p := testProduct()

	item, _ := models.ParseItemID("sidr-honey::w1000")
	line := ResolveLine(p, item)
	assert.True(t, line.Found)
	assert.False(t, line.Eligible, "inStock=false variant resolves for display but is not orderable")
}

func TestResolveLineUnknownVariant(t *testing.T) {
	p := testProduct()

	item, _ := models.ParseItemID("sidr-honey::w9999")
	line := ResolveLine(p, item)
	assert.False(t, line.Found)
	assert.Zero(t, line.UnitPrice)
}

func TestResolveLinePlain(t *testing.T) {
	p := testProduct()

	item, _ := models.ParseItemID("sidr-honey")
	line := ResolveLine(p, item)
	assert.True(t, line.Found)
	assert.True(t, line.Eligible)
	assert.Equal(t, 450.0, line.UnitPrice)
	assert.Empty(t, line.Label)
}

func TestResolveLineCustom(t *testing.T) {
	p := &models.Product{
		ID:    "chamomile",
		Price: 0.4,
		CustomPricing: &models.CustomPricing{
			Enabled:      true,
			Unit:         "grams",
			PricePerUnit: 0.4,
			Min:          100,
			Max:          2000,
			Step:         50,
		},
	}

	item, _ := models.ParseItemID("chamomile::custom-g-500")
	line := ResolveLine(p, item)
	assert.True(t, line.Found)
	assert.Equal(t, 200.0, line.UnitPrice, "0.4 per gram times 500")
	assert.Equal(t, "500 جم", line.Label)

	// Unit mismatch between identifier and pricing rule
	item, _ = models.ParseItemID("chamomile::custom-ml-500")
	assert.False(t, ResolveLine(p, item).Found)

	// Disabled rule
	p.CustomPricing.Enabled = false
	item, _ = models.ParseItemID("chamomile::custom-g-500")
	assert.False(t, ResolveLine(p, item).Found)
}

func TestResolveLineWrongProduct(t *testing.T) {
	p := testProduct()
	item, _ := models.ParseItemID("other-product::w500")
	assert.False(t, ResolveLine(p, item).Found)
	assert.False(t, ResolveLine(nil, item).Found)
}

func TestPickDefaultWeight(t *testing.T) {
	tests := []struct {
		name string
		p    *models.Product
		want string
	}{
		{
			name: "defaultWeightId wins over default flag",
			p: &models.Product{
				ID:              "p",
				DefaultWeightID: "b",
				Weights: []models.Weight{
					{ID: "a", Default: true},
					{ID: "b"},
				},
			},
			want: "b",
		},
		{
			name: "dangling defaultWeightId falls through to flag",
			p: &models.Product{
				ID:              "p",
				DefaultWeightID: "missing",
				Weights: []models.Weight{
					{ID: "a"},
					{ID: "b", Default: true},
				},
			},
			want: "b",
		},
		{
			name: "no flag picks first in stock",
			p: &models.Product{
				ID: "p",
				Weights: []models.Weight{
					{ID: "a", InStock: boolPtr(false)},
					{ID: "b"},
				},
			},
			want: "b",
		},
		{
			name: "everything out of stock picks first",
			p: &models.Product{
				ID: "p",
				Weights: []models.Weight{
					{ID: "a", InStock: boolPtr(false)},
					{ID: "b", InStock: boolPtr(false)},
				},
			},
			want: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := PickDefaultWeight(tt.p)
			require.NotNil(t, w)
			assert.Equal(t, tt.want, w.ID)
		})
	}

	assert.Nil(t, PickDefaultWeight(&models.Product{ID: "p"}))
	assert.Nil(t, PickDefaultWeight(nil))
}

func TestFormatUnit(t *testing.T) {
	tests := []struct {
		unit   string
		amount float64
		want   string
	}{
		{"g", 1000, "كيلو"},
		{"g", 1500, "كيلو"},
		{"g", 500, "500 جم"},
		{"g", 250, "250 جم"},
		{"g", 100, "100 جم"},
		{"grams", 100, "100 جم"},
		{"kg", 2, "2 كيلو"},
		{"kilogram", 1, "1 كيلو"},
		{"ml", 250, "250 مل"},
		{"millilitre", 250, "250 مل"},
		{"l", 1, "1 لتر"},
		{"lt", 2, "2 لتر"},
		{"litre", 1, "1 لتر"},
		{"piece", 1, "بالقطعة"},
		{"pcs", 3, "بالقطعة"},
		{"box", 3, "3 box"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUnit(tt.unit, tt.amount), "FormatUnit(%q, %v)", tt.unit, tt.amount)
	}
}

func TestWeightLabel(t *testing.T) {
	assert.Equal(t, "نص كيلو", WeightLabel(&models.Weight{Label: "نص كيلو", Unit: "g", Amount: floatPtr(500)}))
	assert.Equal(t, "500 جم", WeightLabel(&models.Weight{Unit: "g", Amount: floatPtr(500)}))
	assert.Equal(t, "250 جم", WeightLabel(&models.Weight{Grams: floatPtr(250)}))
	assert.Equal(t, "", WeightLabel(&models.Weight{}))
	assert.Equal(t, "", WeightLabel(nil))
}

func TestValidateCustomAmount(t *testing.T) {
	p := &models.Product{
		ID: "chamomile",
		CustomPricing: &models.CustomPricing{
			Enabled:      true,
			Unit:         "g",
			PricePerUnit: 0.4,
			Min:          100,
			Max:          2000,
			Step:         50,
		},
	}

	assert.NoError(t, ValidateCustomAmount(p, "g", 500))
	assert.EqualError(t, ValidateCustomAmount(p, "g", 50), "الحد الأدنى 100 جرام")
	assert.EqualError(t, ValidateCustomAmount(p, "g", 2500), "الحد الأقصى 2000 جرام")
	assert.EqualError(t, ValidateCustomAmount(p, "g", 120), "يجب أن تكون القيمة مضاعفات 50")
	assert.EqualError(t, ValidateCustomAmount(p, "ml", 500), "هذا المنتج لا يدعم تحديد كمية مخصصة")

	noCustom := &models.Product{ID: "plain"}
	assert.EqualError(t, ValidateCustomAmount(noCustom, "g", 500), "هذا المنتج لا يدعم تحديد كمية مخصصة")
}

func TestValidateCustomAmountMilliliterWording(t *testing.T) {
	p := &models.Product{
		ID: "oil",
		CustomPricing: &models.CustomPricing{
			Enabled:      true,
			Unit:         "ml",
			PricePerUnit: 2,
			Min:          100,
		},
	}
	assert.EqualError(t, ValidateCustomAmount(p, "ml", 50), "الحد الأدنى 100 مللي")
}
