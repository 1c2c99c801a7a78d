package conversations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
)

// List returns the caller's conversation threads
// @Summary      List conversations
// @Description  Page through the authenticated user's conversation threads
// @Tags         conversations
// @Security     BearerAuth
// @Produce      json
// @Param        sort query string false "Comma-separated sort columns, prefix with - for descending"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 25, capped)"
// @Success      200 {object} types.ListResponse "Conversations"
// @Router       /api/v1/conversations [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, types.NewErrorResponse("Not authenticated"))
			return
		}

		conversations, meta, err := deps.ConversationService.ListForUser(c.Request.Context(), userID, c.Request.URL.Query())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to list conversations"))
			return
		}

		c.JSON(http.StatusOK, types.NewListResponse(meta, len(conversations), conversations))
	}
}
