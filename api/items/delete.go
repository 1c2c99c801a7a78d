package items

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
	itemsvc "github.com/barterhub/barter-api/internal/services/items"
)

// Delete removes a listing
// @Summary      Delete a listing
// @Description  Delete a listing owned by the authenticated user
// @Tags         items
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Listing ID"
// @Success      200 {object} types.DataResponse "Deleted"
// @Failure      403 {object} types.ErrorResponse "Not the owner"
// @Failure      404 {object} types.ErrorResponse "Listing not found"
// @Router       /api/v1/items/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
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

		if err := deps.ItemService.Delete(c.Request.Context(), userID, id); err != nil {
			switch {
			case itemsvc.IsNotFound(err):
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Listing not found"))
			case errors.Is(err, itemsvc.ErrNotOwner):
				c.JSON(http.StatusForbidden, types.NewErrorResponse("You do not own this listing"))
			default:
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to delete listing"))
			}
			return
		}

		c.JSON(http.StatusOK, types.NewDataResponse(gin.H{"deleted": id}))
	}
}
