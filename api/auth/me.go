package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/types"
)

// Me returns the authenticated user's profile
// @Summary      Get current user
// @Description  Return the profile of the authenticated user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse "Current user"
// @Failure      401 {object} types.ErrorResponse "Not authenticated"
// @Router       /api/v1/auth/me [get]
func Me(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, types.NewErrorResponse("Not authenticated"))
			return
		}

		user, err := deps.UserService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusNotFound, types.NewErrorResponse("User not found"))
			return
		}

		c.JSON(http.StatusOK, types.NewDataResponse(user))
	}
}
