package conversations

import (
	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
)

// RegisterRoutes registers conversation routes. Everything here requires
// authentication.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(auth.RequireAuth(deps))

	router.POST("", Start(deps))
	router.GET("", List(deps))
	router.GET("/:id", Get(deps))
	router.GET("/:id/messages", GetMessages(deps))
	router.POST("/:id/messages", PostMessage(deps))
}
