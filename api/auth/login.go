package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/types"
	"github.com/barterhub/barter-api/internal/services/users"
)

// Login exchanges credentials for a token
// @Summary      Log in
// @Description  Exchange email and password for an auth token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.LoginRequest true "Credentials"
// @Success      200 {object} types.AuthResponse "Authenticated"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      401 {object} types.ErrorResponse "Invalid credentials"
// @Router       /api/v1/auth/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request format"))
			return
		}

		user, token, err := deps.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, users.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, types.NewErrorResponse("Invalid email or password"))
				return
			}
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to log in"))
			return
		}

		c.JSON(http.StatusOK, types.AuthResponse{Success: true, Token: token, User: user})
	}
}
