package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Auth enforces a bearer token. The configured value is a bcrypt hash of
// the token, so the environment never carries the secret itself. An empty
// hash disables the check.
//
// The bcrypt comparison runs once per distinct presented token; verified
// tokens are remembered for the process lifetime to keep the cost off the
// request path.
func Auth(tokenHash string) gin.HandlerFunc {
	if tokenHash == "" {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu       sync.RWMutex
		verified string
	)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "missing bearer token",
			})
			c.Abort()
			return
		}

		mu.RLock()
		known := verified
		mu.RUnlock()
		if known != "" && subtle.ConstantTimeCompare([]byte(known), []byte(token)) == 1 {
			c.Next()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid token",
			})
			c.Abort()
			return
		}

		mu.Lock()
		verified = token
		mu.Unlock()
		c.Next()
	}
}
