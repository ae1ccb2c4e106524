package product_controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qarsatnahlah/store-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// hasStorefrontFilters checks if any filter-related query param is present.
func hasStorefrontFilters(c *gin.Context) bool {
	return c.Query("q") != "" ||
		c.Query("category") != "" ||
		c.Query("flag") != "" ||
		c.Query("availability") != ""
}

// filterProducts applies the listing-page filters over the active catalog
// subset in memory.
func filterProducts(products []models.Product, c *gin.Context) []models.Product {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	category := c.Query("category")
	flag := c.Query("flag")
	availability := c.Query("availability")

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if flag != "" && !hasFlag(&p, flag) {
			continue
		}
		switch availability {
		case "in_stock":
			if p.IsOutOfStock() {
				continue
			}
		case "out_of_stock":
			if !p.IsOutOfStock() {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func hasFlag(p *models.Product, flag string) bool {
	switch flag {
	case "featured":
		return p.Featured
	case "bestseller":
		return p.Bestseller
	case "newArrival":
		return p.NewArrival
	case "preOrder":
		return p.PreOrder
	case "limitedEdition":
		return p.LimitedEdition
	case "bundle":
		return p.Bundle
	default:
		return false
	}
}

func paginate(products []models.Product, page, limit int) []models.Product {
	start := (page - 1) * limit
	if start > len(products) {
		start = len(products)
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
