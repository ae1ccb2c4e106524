package utils

import "github.com/gin-gonic/gin"

// CartIDFromRequest extracts the caller's cart id. The storefront sends it
// as a header; the query form exists for plain-link testing. Empty means
// the legacy single shared cart key.
func CartIDFromRequest(c *gin.Context) string {
	if id := c.GetHeader("X-Cart-ID"); id != "" {
		return id
	}
	return c.Query("cart_id")
}
