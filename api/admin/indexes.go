package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/types"
	itemsvc "github.com/barterhub/barter-api/internal/services/items"
	apperrors "github.com/barterhub/barter-api/pkg/errors"
)

// RebuildGeoIndex (re)creates the positional index on listings
// @Summary      Rebuild the geo index
// @Description  Create the latitude/longitude index if missing. Idempotent; until it exists, radius filters are skipped.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse "Index state"
// @Failure      403 {object} types.ErrorResponse "Admin access required"
// @Router       /api/v1/admin/indexes/geo [put]
func RebuildGeoIndex(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.ItemService.RebuildGeoIndex(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to rebuild geo index"))
			return
		}
		c.JSON(http.StatusOK, types.NewDataResponse(gin.H{"index": "geo", "state": "ready"}))
	}
}

// RebuildSearchIndex (re)creates the full-text index on listings
// @Summary      Rebuild the text index
// @Description  Create the full-text index if missing and repopulate it. Idempotent; until it exists, keyword search uses substring matching.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.DataResponse "Index state"
// @Failure      403 {object} types.ErrorResponse "Admin access required"
// @Failure      503 {object} types.ErrorResponse "Build lacks FTS5 support"
// @Router       /api/v1/admin/indexes/search [put]
func RebuildSearchIndex(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.ItemService.RebuildSearchIndex(c.Request.Context()); err != nil {
			if errors.Is(err, itemsvc.ErrTextIndexUnsupported) {
				appErr := apperrors.New(apperrors.ErrCodeUnavailable,
					"This build does not support full-text indexing; keyword search stays on substring matching").
					WithDetail("build_tag", "sqlite_fts5")
				c.JSON(appErr.GetHTTPCode(), types.NewAppErrorResponse(appErr))
				return
			}
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to rebuild text index"))
			return
		}
		c.JSON(http.StatusOK, types.NewDataResponse(gin.H{"index": "search", "state": "ready"}))
	}
}
