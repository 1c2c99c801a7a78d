package items

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
	"github.com/barterhub/barter-api/internal/models"
	apperrors "github.com/barterhub/barter-api/pkg/errors"
)

// rejectPartialCoordinates writes a 400 when exactly one half of the
// coordinate pair is present. A listing declares both coordinates or
// neither; a lone latitude or longitude is never stored.
func rejectPartialCoordinates(c *gin.Context, lat, lng *float64) bool {
	if (lat == nil) == (lng == nil) {
		return false
	}
	appErr := apperrors.ValidationError("coordinates", "latitude and longitude must be provided together")
	c.JSON(appErr.GetHTTPCode(), types.NewAppErrorResponse(appErr))
	return true
}

// Create adds a new listing
// @Summary      Create a listing
// @Description  Create a listing owned by the authenticated user
// @Tags         items
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body types.CreateItemRequest true "Listing details"
// @Success      201 {object} types.DataResponse "Created listing"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      401 {object} types.ErrorResponse "Not authenticated"
// @Router       /api/v1/items [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, types.NewErrorResponse("Not authenticated"))
			return
		}

		var req types.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request format"))
			return
		}

		if rejectPartialCoordinates(c, req.Latitude, req.Longitude) {
			return
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
			IsAvailable:    true,
		}
		if item.Condition == "" {
			item.Condition = models.ConditionGood
		}

		if err := deps.ItemService.Create(c.Request.Context(), userID, item); err != nil {
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to create listing"))
			return
		}

		c.JSON(http.StatusCreated, types.NewDataResponse(item))
	}
}
