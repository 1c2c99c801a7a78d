package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Service info
// @Description  Return the service name and version
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]string "Service info"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Barter API",
			"version":     "1.0.0",
			"description": "API for the peer-to-peer bartering marketplace",
			"status":      "running",
		})
	}
}
