package items

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
	"github.com/barterhub/barter-api/internal/models"
	itemsvc "github.com/barterhub/barter-api/internal/services/items"
)

// Update replaces a listing's mutable fields
// @Summary      Update a listing
// @Description  Replace the fields of a listing owned by the authenticated user
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Listing ID"
// @Param        request body types.UpdateItemRequest true "Listing details"
// @Success      200 {object} types.DataResponse "Updated listing"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      403 {object} types.ErrorResponse "Not the owner"
// @Failure      404 {object} types.ErrorResponse "Listing not found"
// @Router       /api/v1/items/{id} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
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

		var req types.UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request format"))
			return
		}

		if rejectPartialCoordinates(c, req.Latitude, req.Longitude) {
			return
		}

		available := true
		if req.IsAvailable != nil {
			available = *req.IsAvailable
		}

		item := &models.Item{
			Title:          req.Title,
			Description:    req.Description,
			Category:       req.Category,
			Condition:      req.Condition,
			Location:       req.Location,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			WantedInReturn: req.WantedInReturn,
			IsAvailable:    available,
		}
		item.ID = id

		if err := deps.ItemService.Update(c.Request.Context(), userID, item); err != nil {
			writeItemError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.NewDataResponse(item))
	}
}

// writeItemError maps service errors onto the envelope.
func writeItemError(c *gin.Context, err error) {
	switch {
	case itemsvc.IsNotFound(err):
		c.JSON(http.StatusNotFound, types.NewErrorResponse("Listing not found"))
	case errors.Is(err, itemsvc.ErrNotOwner):
		c.JSON(http.StatusForbidden, types.NewErrorResponse("You do not own this listing"))
	default:
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to update listing"))
	}
}
