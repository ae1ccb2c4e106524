package services

import (
	"testing"
	"time"

	"github.com/qarsatnahlah/store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToAmount(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		percentage float64
		wantDisc   float64
		wantTotal  float64
	}{
		{"typical", 200, 10, 20, 180},
		{"rounds half up", 33.335, 10, 3.33, 30.01},
		{"zero percent keeps amount exact", 123.45, 0, 0, 123.45},
		{"hundred percent zeroes total", 123.45, 100, 123.45, 0},
		{"negative clamps to zero", 100, -5, 0, 100},
		{"over hundred clamps to hundred", 100, 150, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := ApplyToAmount(tt.amount, tt.percentage)
			assert.Equal(t, tt.amount, calc.Original)
			assert.Equal(t, tt.wantDisc, calc.DiscountAmount)
			assert.Equal(t, tt.wantTotal, calc.Total)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 1.0, Round2(1.004))
	assert.Equal(t, 0.0, Round2(0))
}

func TestIsActiveAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	cfg := &models.SiteDiscountConfig{
		Active:     true,
		Percentage: 10,
		Start:      &start,
		End:        &end,
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"inside window", start.Add(24 * time.Hour), true},
		{"exactly at start", start, true},
		{"exactly at end", end, true},
		{"1ms before start", start.Add(-time.Millisecond), false},
		{"1ms after end", end.Add(time.Millisecond), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActiveAt(cfg, tt.now))
		})
	}

	t.Run("inactive flag wins", func(t *testing.T) {
		off := *cfg
		off.Active = false
		assert.False(t, IsActiveAt(&off, start.Add(time.Hour)))
	})

	t.Run("zero percentage never active", func(t *testing.T) {
		zero := *cfg
		zero.Percentage = 0
		assert.False(t, IsActiveAt(&zero, start.Add(time.Hour)))
	})

	t.Run("missing bounds are unbounded", func(t *testing.T) {
		open := &models.SiteDiscountConfig{Active: true, Percentage: 5}
		assert.True(t, IsActiveAt(open, time.Now()))
		assert.False(t, IsActiveAt(nil, time.Now()))
	})
}

func TestProductDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		discount *models.ProductDiscount
		want     float64
	}{
		{"percent", &models.ProductDiscount{Type: "percent", Value: 10}, 10},
		{"percentage", &models.ProductDiscount{Type: "percentage", Value: 15}, 15},
		{"legacy misspelling precent", &models.ProductDiscount{Type: "precent", Value: 20}, 20},
		{"case insensitive", &models.ProductDiscount{Type: " Percent ", Value: 10}, 10},
		{"unknown type", &models.ProductDiscount{Type: "fixed", Value: 50}, 0},
		{"zero value", &models.ProductDiscount{Type: "percent", Value: 0}, 0},
		{"negative value", &models.ProductDiscount{Type: "percent", Value: -5}, 0},
		{"over hundred clamps", &models.ProductDiscount{Type: "percent", Value: 120}, 100},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Product{ID: "p", Discount: tt.discount}
			assert.Equal(t, tt.want, ProductDiscountPercent(p))
		})
	}

	assert.Zero(t, ProductDiscountPercent(nil))
}

func TestNormalizeDiscountConfig(t *testing.T) {
	raw := models.RawDiscountConfig{
		DiscountActive:     true,
		DiscountPercentage: 7.5,
		DiscountMessage:    "  خصم الافتتاح  ",
		DiscountLabel:      "خصم الافتتاح",
		StartDate:          "2026-03-01",
		EndDate:            "2026-03-31T23:59:59+02:00",
		ThemeColor:         "#d4a017",
	}

	cfg := NormalizeDiscountConfig(raw)
	assert.True(t, cfg.Active)
	assert.Equal(t, 7.5, cfg.Percentage)
	assert.Equal(t, "خصم الافتتاح", cfg.Message)

	require.NotNil(t, cfg.Start)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *cfg.Start)

	require.NotNil(t, cfg.End)
	assert.Equal(t, 23, cfg.End.Hour())
}

func TestNormalizeDiscountConfigBadDates(t *testing.T) {
	cfg := NormalizeDiscountConfig(models.RawDiscountConfig{
		DiscountActive: true,
		StartDate:      "not-a-date",
		EndDate:        "31/03/2026",
	})
	assert.Nil(t, cfg.Start)
	assert.Nil(t, cfg.End)
}

func TestSiteDiscountLabel(t *testing.T) {
	assert.Equal(t, "خصم الافتتاح", SiteDiscountLabel(&models.SiteDiscountConfig{Label: "خصم الافتتاح"}))
	assert.Equal(t, DefaultSiteDiscountLabel, SiteDiscountLabel(&models.SiteDiscountConfig{}))
	assert.Equal(t, DefaultSiteDiscountLabel, SiteDiscountLabel(nil))
}
