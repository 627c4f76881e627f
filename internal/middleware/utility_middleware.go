package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CORSMiddleware configures CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID, X-User-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware adds a request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// IdentityMiddleware resolves the caller-supplied identity. There is no
// authentication layer; the X-User-ID header is trusted as-is and falls
// back to the seeded default user.
func IdentityMiddleware(defaultUserID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := defaultUserID
		if header := c.GetHeader("X-User-ID"); header != "" {
			if id, err := strconv.Atoi(header); err == nil && id > 0 {
				userID = id
			}
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
