package conversations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
	convsvc "github.com/barterhub/barter-api/internal/services/conversations"
)

// Start opens a conversation about a listing
// @Summary      Start a conversation
// @Description  Open (or return the existing) thread between the caller and a listing's owner
// @Tags         conversations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body types.StartConversationRequest true "Listing to ask about"
// @Success      201 {object} types.DataResponse "Conversation"
// @Failure      400 {object} types.ErrorResponse "Bad request - own listing"
// @Failure      404 {object} types.ErrorResponse "Listing not found"
// @Router       /api/v1/conversations [post]
func Start(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, types.NewErrorResponse("Not authenticated"))
			return
		}

		var req types.StartConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request format"))
			return
		}

		conversation, err := deps.ConversationService.Start(c.Request.Context(), req.ItemID, userID)
		if err != nil {
			switch {
			case errors.Is(err, convsvc.ErrItemNotFound):
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Listing not found"))
			case errors.Is(err, convsvc.ErrSelfConversation):
				c.JSON(http.StatusBadRequest, types.NewErrorResponse("You cannot start a conversation about your own listing"))
			default:
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to start conversation"))
			}
			return
		}

		c.JSON(http.StatusCreated, types.NewDataResponse(conversation))
	}
}
