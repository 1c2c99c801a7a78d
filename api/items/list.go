package items

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/types"
)

// List handles generic listing queries
// @Summary      List listings
// @Description  Generic listing with arbitrary field filters (field=value, field[gt]=value), column selection, sort and pagination
// @Tags         items
// @Produce      json
// @Param        select query string false "Comma-separated columns to return"
// @Param        sort query string false "Comma-separated sort columns, prefix with - for descending"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 25, capped)"
// @Success      200 {object} types.ListResponse "Listings"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/items [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, meta, err := deps.ItemService.List(c.Request.Context(), c.Request.URL.Query())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to list listings"))
			return
		}

		c.JSON(http.StatusOK, types.NewListResponse(meta, len(results), results))
	}
}
