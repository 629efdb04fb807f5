package middleware

import (
	"crypto/subtle"
	"net/http"

	"malone/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgentAuthMiddleware guards the webhook surface with the static API key the
// voice agent presents on every call. There are no end-user accounts here;
// the only client is the phone platform.
func AgentAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.AppConfig.AgentAPIKey
		if expected == "" {
			// Unset key means a dev environment; let requests through.
			c.Next()
			return
		}

		presented := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
			zap.L().Warn("Rejected webhook call with bad API key", zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}
		c.Next()
	}
}
