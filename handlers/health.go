package handlers

import (
	"net/http"

	"malone/utils"

	"github.com/gin-gonic/gin"
)

// Health returns the latest snapshot from the background health monitor.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"deps":   utils.GetHealthStatus(),
	})
}
