// Package identity extracts the acting user from the X-Sharer-User-Id
// header. The header is trusted as-is: authentication is delegated to the
// deployment environment.
package identity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Header names the caller-identity header shared by gateway and server.
const Header = "X-Sharer-User-Id"

const contextKey = "callerID"

// Required aborts the request with 400 when the caller-id header is
// missing or not a positive integer.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(Header)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": Header + " header is required",
			})
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": Header + " header must be a positive integer",
			})
			return
		}

		c.Set(contextKey, id)
		c.Next()
	}
}

// CallerID returns the user id stored by Required. Zero means the
// middleware did not run on this route.
func CallerID(c *gin.Context) int64 {
	id, _ := c.Get(contextKey)
	v, _ := id.(int64)
	return v
}
