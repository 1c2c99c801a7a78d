package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/types"
	"github.com/barterhub/barter-api/internal/services/users"
)

// Register creates a new account and returns a token
// @Summary      Register a new user
// @Description  Create an account and receive an auth token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.RegisterRequest true "Account details"
// @Success      201 {object} types.AuthResponse "Account created"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      409 {object} types.ErrorResponse "Email already registered"
// @Router       /api/v1/auth/register [post]
func Register(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request format"))
			return
		}

		user, err := deps.UserService.Register(c.Request.Context(), req.DisplayName, req.Email, req.Password, req.Location)
		if err != nil {
			if errors.Is(err, users.ErrEmailTaken) {
				c.JSON(http.StatusConflict, types.NewErrorResponse("Email is already registered"))
				return
			}
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to create account"))
			return
		}

		_, token, err := deps.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Account created but login failed"))
			return
		}

		c.JSON(http.StatusCreated, types.AuthResponse{Success: true, Token: token, User: user})
	}
}
