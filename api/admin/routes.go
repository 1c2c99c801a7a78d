package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
)

// RegisterRoutes registers admin routes. Everything here requires an admin
// token.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(auth.RequireAdmin(deps))

	router.PUT("/indexes/geo", RebuildGeoIndex(deps))
	router.PUT("/indexes/search", RebuildSearchIndex(deps))
}
