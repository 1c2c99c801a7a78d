package items

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterhub/barter-api/api/auth"
	"github.com/barterhub/barter-api/api/types"
	"github.com/barterhub/barter-api/internal/services/images"
	apperrors "github.com/barterhub/barter-api/pkg/errors"
)

// UploadImage attaches a photo to a listing
// @Summary      Upload a listing photo
// @Description  Upload an image (multipart field "image") for a listing owned by the authenticated user
// @Tags         items
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Listing ID"
// @Param        image formData file true "Image file (jpeg, png, webp or gif)"
// @Success      201 {object} types.DataResponse "Stored image"
// @Failure      400 {object} types.ErrorResponse "Bad request - unsupported image type"
// @Failure      403 {object} types.ErrorResponse "Not the owner"
// @Failure      503 {object} types.ErrorResponse "Image storage not configured"
// @Router       /api/v1/items/{id}/images [post]
func UploadImage(deps *types.Dependencies) gin.HandlerFunc {
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

		if deps.Uploader == nil {
			appErr := apperrors.New(apperrors.ErrCodeUnavailable, "Image storage is not configured")
			c.JSON(appErr.GetHTTPCode(), types.NewAppErrorResponse(appErr))
			return
		}

		header, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Missing image file"))
			return
		}

		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unreadable image file"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unreadable image file"))
			return
		}

		url, key, err := deps.Uploader.Upload(c.Request.Context(), data, header.Header.Get("Content-Type"))
		if err != nil {
			var unsupported *images.ErrUnsupportedType
			if errors.As(err, &unsupported) {
				appErr := apperrors.New(apperrors.ErrCodeUnsupportedType, "Unsupported image type").
					WithDetail("content_type", unsupported.ContentType)
				c.JSON(appErr.GetHTTPCode(), types.NewAppErrorResponse(appErr))
				return
			}
			appErr := apperrors.StorageError("upload", err)
			c.JSON(appErr.GetHTTPCode(), types.NewAppErrorResponse(appErr))
			return
		}

		image, err := deps.ItemService.AttachImage(c.Request.Context(), userID, id, url, key)
		if err != nil {
			writeItemError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.NewDataResponse(image))
	}
}
