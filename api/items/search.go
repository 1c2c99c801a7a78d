package items

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/types"
	"github.com/barterhub/barter-api/internal/query"
	"github.com/barterhub/barter-api/pkg/config"
)

// Search handles listing discovery requests
// @Summary      Search listings
// @Description  Full composed search: keyword, category, condition, location, geo radius, sort and pagination. Bad parameters fall back to defaults instead of erroring.
// @Tags         items
// @Produce      json
// @Param        q query string false "Keyword matched against title and description"
// @Param        category query string false "Exact category"
// @Param        condition query string false "Exact condition"
// @Param        location query string false "Location substring, case-insensitive"
// @Param        lat query number false "Latitude; only used when lng is also present"
// @Param        lng query number false "Longitude; only used when lat is also present"
// @Param        distance query number false "Radius in kilometers (default 10)"
// @Param        sort query string false "recent, oldest, az, za or nearest"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 12, capped)"
// @Success      200 {object} types.ListResponse "Matching listings"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/items/search [get]
func Search(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxLimit := config.GetInt("search.max_page_size")
		if maxLimit <= 0 {
			maxLimit = 100
		}

		params := query.ParseSearchParams(c.Request.URL.Query(), maxLimit)

		// The radius default is operator-tunable; an explicit distance
		// parameter always wins.
		if c.Query("distance") == "" {
			if radius := config.GetFloat64("search.default_radius_km"); radius > 0 {
				params.RadiusKm = radius
			}
		}

		results, meta, err := deps.ItemService.Search(c.Request.Context(), params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to search listings"))
			return
		}

		c.JSON(http.StatusOK, types.NewListResponse(meta, len(results), results))
	}
}
