package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/types"
)

// RegisterRoutes registers auth routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/register", Register(deps))
	router.POST("/login", Login(deps))
	router.GET("/me", RequireAuth(deps), Me(deps))
}
