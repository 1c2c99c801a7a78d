package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key, err := objectKey("items", "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "items/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	t.Run("keys are unique", func(t *testing.T) {
		a, err := objectKey("items", "image/png")
		require.NoError(t, err)
		b, err := objectKey("items", "image/png")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		_, err := objectKey("items", "application/zip")
		var unsupported *ErrUnsupportedType
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "application/zip", unsupported.ContentType)
	})
}
