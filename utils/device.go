// ════════════════════════════════════════════════════════════
// Path: utils/device.go
// Basic device detection from the User-Agent header
// ════════════════════════════════════════════════════════════

package utils

import "strings"

// IsMobileUA reports whether the request comes from a handheld device.
// Used to pick the whatsapp:// app scheme over the web endpoint. Basic
// heuristic, same tokens the storefront has always sniffed for.
func IsMobileUA(userAgent string) bool {
	ua := strings.ToLower(userAgent)

	for _, token := range []string{
		"android", "webos", "iphone", "ipad", "ipod",
		"blackberry", "iemobile", "opera mini", "mobile",
	} {
		if strings.Contains(ua, token) {
			return true
		}
	}
	return false
}
