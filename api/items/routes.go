package items

import (
	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
)

// RegisterRoutes registers listing routes. searchMiddleware is applied to
// the discovery endpoints only, so response caching never touches
// mutations.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, searchMiddleware ...gin.HandlerFunc) {
	withSearch := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		handlers := make([]gin.HandlerFunc, 0, len(searchMiddleware)+1)
		handlers = append(handlers, searchMiddleware...)
		return append(handlers, handler)
	}

	// GET /api/v1/items - generic listing
	router.GET("", withSearch(List(deps))...)

	// GET /api/v1/items/search - composed discovery query
	router.GET("/search", withSearch(Search(deps))...)

	// GET /api/v1/items/:id - single listing
	router.GET("/:id", Get(deps))

	authRequired := auth.RequireAuth(deps)
	router.POST("", authRequired, Create(deps))
	router.PUT("/:id", authRequired, Update(deps))
	router.DELETE("/:id", authRequired, Delete(deps))
	router.POST("/:id/images", authRequired, UploadImage(deps))
}
