package images

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Uploader stores item photos and returns a public URL plus the storage
// key needed to delete them later.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (url, key string, err error)
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ErrUnsupportedType is returned for uploads that are not images we
// serve.
type ErrUnsupportedType struct {
	ContentType string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported image content type %q", e.ContentType)
}

// objectKey derives a collision-free storage key for an upload, or an
// error when the content type is not an accepted image format.
func objectKey(folder, contentType string) (string, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return "", &ErrUnsupportedType{ContentType: contentType}
	}
	return fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext), nil
}
