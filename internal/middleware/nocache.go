package middleware

import "github.com/gin-gonic/gin"

// NoCache marks every response uncacheable so the browser always refetches
// balances and holdings instead of showing stale pages after a trade.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
