package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/types"
	"github.com/barterhub/barter-api/internal/services/users"
)

// Context keys set by the middleware for downstream handlers.
const (
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

// UserID returns the authenticated user's id from the request context.
func UserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// authenticate validates the bearer token and stores the caller's identity
// in the request context. On failure it writes the 401 and aborts; it never
// advances the handler chain, so callers decide when to c.Next().
func authenticate(c *gin.Context, deps *types.Dependencies) (*users.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewErrorResponse("Authorization header required"))
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewErrorResponse("Invalid authorization header format"))
		return nil, false
	}

	claims, err := deps.UserService.ValidateToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewErrorResponse("Invalid or expired token"))
		return nil, false
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextIsAdmin, claims.IsAdmin)
	return claims, true
}

// RequireAuth validates the bearer token and stores the caller's identity
// in the request context.
func RequireAuth(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, deps); !ok {
			return
		}
		c.Next()
	}
}

// RequireAdmin validates the bearer token and rejects non-admin callers.
// The admin check happens before the chain advances, so a non-admin token
// never reaches the protected handler.
func RequireAdmin(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, deps)
		if !ok {
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, types.NewErrorResponse("Admin access required"))
			return
		}
		c.Next()
	}
}
