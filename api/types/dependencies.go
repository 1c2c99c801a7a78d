package types

import (
	"time"

	"github.com/barterhub/barter-api/internal/database"
	"github.com/barterhub/barter-api/internal/services/cache"
	"github.com/barterhub/barter-api/internal/services/conversations"
	"github.com/barterhub/barter-api/internal/services/images"
	"github.com/barterhub/barter-api/internal/services/items"
	"github.com/barterhub/barter-api/internal/services/users"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                  *database.DB
	ItemService         items.ItemService
	UserService         *users.Service
	ConversationService *conversations.Service
	Uploader            images.Uploader
	Cache               cache.Cache

	// SearchCacheTTL enables response caching on the discovery endpoints
	// when positive and Cache is set.
	SearchCacheTTL time.Duration
}
