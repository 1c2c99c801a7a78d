package conversations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
	convsvc "github.com/barterhub/barter-api/internal/services/conversations"
)

// parseID extracts the numeric id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid conversation id"))
		return 0, false
	}
	return uint(id), true
}

// writeConversationError maps service errors onto the envelope.
func writeConversationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, convsvc.ErrNotFound):
		c.JSON(http.StatusNotFound, types.NewErrorResponse("Conversation not found"))
	case errors.Is(err, convsvc.ErrNotParticipant):
		c.JSON(http.StatusForbidden, types.NewErrorResponse("You are not part of this conversation"))
	default:
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to load conversation"))
	}
}

// Get returns a single conversation
// @Summary      Get a conversation
// @Description  Return one thread the authenticated user participates in
// @Tags         conversations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Conversation ID"
// @Success      200 {object} types.DataResponse "Conversation"
// @Failure      403 {object} types.ErrorResponse "Not a participant"
// @Failure      404 {object} types.ErrorResponse "Conversation not found"
// @Router       /api/v1/conversations/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
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

		conversation, err := deps.ConversationService.Get(c.Request.Context(), id, userID)
		if err != nil {
			writeConversationError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.NewDataResponse(conversation))
	}
}
