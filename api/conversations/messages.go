package conversations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
)

// GetMessages pages through a conversation's messages
// @Summary      List messages
// @Description  Page through a thread's messages, oldest first by default
// @Tags         conversations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Conversation ID"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 25, capped)"
// @Success      200 {object} types.ListResponse "Messages"
// @Failure      403 {object} types.ErrorResponse "Not a participant"
// @Failure      404 {object} types.ErrorResponse "Conversation not found"
// @Router       /api/v1/conversations/{id}/messages [get]
func GetMessages(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, types.NewErrorResponse("Not authenticated"))
			return
		}

		id, ok := parseID(c)
		if !ok {
			return
		}

		messages, meta, err := deps.ConversationService.Messages(c.Request.Context(), id, userID, c.Request.URL.Query())
		if err != nil {
			writeConversationError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.NewListResponse(meta, len(messages), messages))
	}
}

// PostMessage appends a message to a conversation
// @Summary      Send a message
// @Description  Append a message to a thread the authenticated user participates in
// @Tags         conversations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Conversation ID"
// @Param        request body types.SendMessageRequest true "Message body"
// @Success      201 {object} types.DataResponse "Stored message"
// @Failure      403 {object} types.ErrorResponse "Not a participant"
// @Failure      404 {object} types.ErrorResponse "Conversation not found"
// @Router       /api/v1/conversations/{id}/messages [post]
func PostMessage(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, types.NewErrorResponse("Not authenticated"))
			return
		}

		id, ok := parseID(c)
		if !ok {
			return
		}

		var req types.SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request format"))
			return
		}

		message, err := deps.ConversationService.Append(c.Request.Context(), id, userID, req.Body)
		if err != nil {
			writeConversationError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.NewDataResponse(message))
	}
}
