package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders sets a conservative set of browser security headers on
// every response. The CSP only allows same-origin content plus the quote
// proxy for client-side fetches.
func SecurityHeaders() gin.HandlerFunc {
	csp := "default-src 'self'; " +
		"script-src 'self'; " +
		"style-src 'self'; " +
		"img-src 'self' data:; " +
		"connect-src 'self' https://stock-price-checker-proxy.freecodecamp.rocks; " +
		"object-src 'none'; " +
		"frame-src 'none'"

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		c.Next()
	}
}
