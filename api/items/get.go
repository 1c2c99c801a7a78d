package items

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/types"
	itemsvc "github.com/barterhub/barter-api/internal/services/items"
)

// parseID extracts the numeric id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid listing id"))
		return 0, false
	}
	return uint(id), true
}

// Get returns a single listing
// @Summary      Get a listing
// @Description  Return one listing with its owner and images
// @Tags         items
// @Produce      json
// @Param        id path int true "Listing ID"
// @Success      200 {object} types.DataResponse "Listing"
// @Failure      404 {object} types.ErrorResponse "Listing not found"
// @Router       /api/v1/items/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		item, err := deps.ItemService.Get(c.Request.Context(), id)
		if err != nil {
			if itemsvc.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Listing not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to load listing"))
			return
		}

		c.JSON(http.StatusOK, types.NewDataResponse(item))
	}
}
